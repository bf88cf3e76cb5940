package cli

import (
	"context"
	"flag"
	"fmt"
	"strconv"

	"github.com/yigit/alumnisphere/internal/app/models/dto"
	"github.com/yigit/alumnisphere/internal/app/services"
	"github.com/yigit/alumnisphere/internal/pkg/helpers"
)

func (e *env) runEvents(ctx context.Context, args []string) error {
	sub, err := requireArg(args, "events list|get|register|unregister")
	if err != nil {
		return err
	}

	switch sub {
	case "list":
		return e.runEventsList(ctx, args[1:])
	case "get":
		return e.runEventsGet(ctx, args[1:])
	case "register":
		return e.runEventsRegister(ctx, args[1:], true)
	case "unregister":
		return e.runEventsRegister(ctx, args[1:], false)
	default:
		return fmt.Errorf("unknown events subcommand %q", sub)
	}
}

func (e *env) runEventsList(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("events list", flag.ContinueOnError)
	all := fs.Bool("all", false, "fetch every page")
	skip := fs.Int("skip", 0, "items to skip")
	limit := fs.Int("limit", helpers.DefaultLimit, "page size")
	search := fs.String("search", "", "substring filter over title, description and location")
	status := fs.String("status", "", "only this status (upcoming, ongoing, completed, cancelled)")
	virtual := fs.Bool("virtual", false, "only virtual events")
	registered := fs.Bool("registered", false, "only events you are registered for")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var events []dto.EventView
	var err error
	if *all {
		events, err = e.svc.Events.ListAll(ctx)
	} else {
		events, err = e.svc.Events.List(ctx, *skip, *limit)
	}
	if err != nil {
		return err
	}

	events = e.svc.Events.Filter(events, services.EventFilter{
		Status:         *status,
		VirtualOnly:    *virtual,
		RegisteredOnly: *registered,
	})
	events = e.svc.Events.Search(events, *search)

	if len(events) == 0 {
		e.printf("No events\n")
		return nil
	}
	for _, ev := range events {
		e.printEventLine(ev)
	}
	return nil
}

func (e *env) printEventLine(ev dto.EventView) {
	marker := " "
	if ev.IsRegistered {
		marker = "*"
	}
	place := ev.Location
	if ev.IsVirtual {
		place = "virtual"
	}
	e.printf("%s #%-4d %s | %s %s (%s, %d attending)\n",
		marker, ev.ID, ev.Title, ev.DateLabel, ev.TimeLabel, place, ev.AttendeeCount)
}

func (e *env) runEventsGet(ctx context.Context, args []string) error {
	id, err := eventID(args)
	if err != nil {
		return err
	}

	ev, err := e.svc.Events.Get(ctx, id)
	if err != nil {
		return err
	}

	e.printf("%s\n", ev.Title)
	e.printf("  when:   %s %s\n", ev.DateLabel, ev.TimeLabel)
	if ev.IsVirtual {
		e.printf("  where:  %s\n", ev.MeetingLink)
	} else {
		e.printf("  where:  %s\n", ev.Location)
	}
	e.printf("  status: %s\n", ev.Status)
	if ev.CreatorName != "" {
		e.printf("  host:   %s\n", ev.CreatorName)
	}
	e.printf("  attending: %d", ev.AttendeeCount)
	if ev.SpotsLeft != nil {
		e.printf(" (%d spots left)", *ev.SpotsLeft)
	}
	e.printf("\n")
	if ev.Description != "" {
		e.printf("\n%s\n", ev.Description)
	}
	switch {
	case ev.IsRegistered:
		e.printf("\nYou are registered.\n")
	case ev.CanRegister:
		e.printf("\nRegistration is open.\n")
	default:
		e.printf("\nRegistration is closed.\n")
	}
	return nil
}

func (e *env) runEventsRegister(ctx context.Context, args []string, register bool) error {
	id, err := eventID(args)
	if err != nil {
		return err
	}

	if register {
		if err := e.svc.Events.Register(ctx, id); err != nil {
			return err
		}
		e.printf("Registered for event #%d\n", id)
		return nil
	}

	if err := e.svc.Events.Unregister(ctx, id); err != nil {
		return err
	}
	e.printf("Registration withdrawn for event #%d\n", id)
	return nil
}

func eventID(args []string) (int64, error) {
	raw, err := requireArg(args, "an event id")
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid event id %q", raw)
	}
	return id, nil
}
