package cli

import (
	"context"
	"flag"
	"fmt"
	"strconv"

	"github.com/yigit/alumnisphere/internal/app/models"
	"github.com/yigit/alumnisphere/internal/app/models/dto"
)

func (e *env) runDocs(ctx context.Context, args []string) error {
	sub, err := requireArg(args, "docs list|request|cancel")
	if err != nil {
		return err
	}

	switch sub {
	case "list":
		return e.runDocsList(ctx, args[1:])
	case "request":
		return e.runDocsRequest(ctx, args[1:])
	case "cancel":
		return e.runDocsCancel(ctx, args[1:])
	default:
		return fmt.Errorf("unknown docs subcommand %q", sub)
	}
}

func (e *env) runDocsList(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("docs list", flag.ContinueOnError)
	all := fs.Bool("all", false, "every request on the platform (admin)")
	status := fs.String("status", "", "narrow --all to one status")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var reqs []dto.DocumentRequestView
	var err error
	if *all {
		var filter *models.DocumentStatus
		if *status != "" {
			st := models.DocumentStatus(*status)
			filter = &st
		}
		reqs, err = e.svc.Documents.ListAll(ctx, filter)
	} else {
		reqs, err = e.svc.Documents.ListMine(ctx)
	}
	if err != nil {
		return err
	}

	if len(reqs) == 0 {
		e.printf("No document requests\n")
		return nil
	}

	for _, r := range reqs {
		e.printf("#%-4d %-24s %-10s", r.ID, r.TypeLabel, r.Status)
		if r.UserName != "" {
			e.printf("  for %s", r.UserName)
		}
		if r.Notes != "" {
			e.printf("  (%s)", r.Notes)
		}
		e.printf("\n")
	}
	return nil
}

func (e *env) runDocsRequest(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("docs request", flag.ContinueOnError)
	docType := fs.String("type", "", "transcript, certificate, diploma, recommendation_letter or enrollment_verification")
	purpose := fs.String("purpose", "", "why the document is needed")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *docType == "" {
		return fmt.Errorf("docs request requires --type")
	}

	req, err := e.svc.Documents.Request(ctx, models.DocumentType(*docType), *purpose)
	if err != nil {
		return err
	}

	e.printf("Requested %s (#%d), status %s\n", req.TypeLabel, req.ID, req.Status)
	return nil
}

func (e *env) runDocsCancel(ctx context.Context, args []string) error {
	raw, err := requireArg(args, "a request id")
	if err != nil {
		return err
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return fmt.Errorf("invalid request id %q", raw)
	}

	if err := e.svc.Documents.Cancel(ctx, id); err != nil {
		return err
	}
	e.printf("Request #%d cancelled\n", id)
	return nil
}
