package report

import (
	"context"
	"fmt"
	"io"
	"strings"

	"storeInspect/internal/runner"
	"storeInspect/repository"
)

// RecentUsers prints the newest users by id, one line each.
func RecentUsers(limit int) runner.Report {
	return func(ctx context.Context, q repository.Querier, w io.Writer) error {
		users, err := repository.NewUserRepository(q).ListRecent(ctx, limit)
		if err != nil {
			return err
		}
		if len(users) == 0 {
			fmt.Fprintln(w, "No users found")
			return nil
		}
		fmt.Fprintf(w, "Most recent %d users:\n", len(users))
		for _, u := range users {
			fmt.Fprintf(w, "ID: %d, Username: %s, Nickname: %s, Created: %s\n",
				u.ID, deref(u.Username), deref(u.Nickname), u.CreatedAt)
		}
		return nil
	}
}

// NotificationSample prints the newest notifications of one category with
// their full content.
func NotificationSample(category string, limit int) runner.Report {
	return func(ctx context.Context, q repository.Querier, w io.Writer) error {
		items, err := repository.NewNotificationRepository(q).ListByCategory(ctx, category, limit)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			fmt.Fprintf(w, "No notifications found in category %q\n", category)
			return nil
		}
		fmt.Fprintf(w, "Latest %d notifications in category %q:\n", len(items), category)
		for _, n := range items {
			fmt.Fprintf(w, "==== Notification %d ====\n", n.ID)
			fmt.Fprintf(w, "User ID: %d\n", n.UserID)
			fmt.Fprintf(w, "Category: %s\n", n.Category)
			fmt.Fprintf(w, "Title: %s\n", n.Title)
			fmt.Fprintf(w, "Created: %s\n", n.CreatedAt)
			fmt.Fprintln(w, "Content:")
			fmt.Fprintln(w, n.Content)
		}
		return nil
	}
}

// UnmigratedNotifications prints the count of notifications titled title whose
// content lacks marker, then lists them with a 1-based sequence number.
func UnmigratedNotifications(title, marker string) runner.Report {
	return func(ctx context.Context, q repository.Querier, w io.Writer) error {
		items, err := repository.NewNotificationRepository(q).ListUnmigrated(ctx, title, marker)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Found %d unmigrated notifications\n", len(items))
		for i, n := range items {
			fmt.Fprintf(w, "%d. [ID %d] %s\n", i+1, n.ID, n.Content)
		}
		return nil
	}
}

// AllUsers prints every user by ascending id. NULL or blank username,
// nickname and avatar render as placeholder.
func AllUsers(placeholder string) runner.Report {
	return func(ctx context.Context, q repository.Querier, w io.Writer) error {
		users, err := repository.NewUserRepository(q).ListAll(ctx)
		if err != nil {
			return err
		}
		if len(users) == 0 {
			fmt.Fprintln(w, "No users found")
			return nil
		}
		fmt.Fprintf(w, "Total users: %d\n", len(users))
		for _, u := range users {
			fmt.Fprintf(w, "ID: %d, Username: %s, Nickname: %s, Avatar: %s, Created: %s\n",
				u.ID,
				orPlaceholder(u.Username, placeholder),
				orPlaceholder(u.Nickname, placeholder),
				orPlaceholder(u.Avatar, placeholder),
				u.CreatedAt)
		}
		return nil
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func orPlaceholder(s *string, placeholder string) string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return placeholder
	}
	return *s
}
