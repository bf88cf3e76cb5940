package cli

import (
	"context"
	"flag"
	"fmt"
	"strconv"
)

func (e *env) runNotifications(ctx context.Context, args []string) error {
	if len(args) > 0 && args[0] == "read" {
		return e.runNotificationsRead(ctx, args[1:])
	}

	fs := flag.NewFlagSet("notifications", flag.ContinueOnError)
	unread := fs.Bool("unread", false, "only unread notifications")
	if err := fs.Parse(args); err != nil {
		return err
	}

	list, err := e.svc.Notifications.List(ctx, *unread)
	if err != nil {
		return err
	}

	count, err := e.svc.Notifications.UnreadCount(ctx)
	if err != nil {
		return err
	}

	if len(list) == 0 {
		e.printf("No notifications\n")
		return nil
	}

	for _, n := range list {
		marker := " "
		if !n.IsRead {
			marker = "*"
		}
		e.printf("%s #%-4d [%s] %s: %s (%s)\n", marker, n.ID, n.Type, n.Title, n.Message, n.AgeLabel)
	}
	e.printf("%d unread\n", count)
	return nil
}

// runNotificationsRead marks one notification (by id) or everything
// (--all) as read.
func (e *env) runNotificationsRead(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("notifications read", flag.ContinueOnError)
	all := fs.Bool("all", false, "mark every notification read")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *all {
		if err := e.svc.Notifications.MarkAllRead(ctx); err != nil {
			return err
		}
		e.printf("All notifications marked read\n")
		return nil
	}

	raw, err := requireArg(fs.Args(), "a notification id or --all")
	if err != nil {
		return err
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return fmt.Errorf("invalid notification id %q", raw)
	}

	if err := e.svc.Notifications.MarkRead(ctx, id); err != nil {
		return err
	}
	e.printf("Notification #%d marked read\n", id)
	return nil
}
