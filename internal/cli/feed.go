package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/yigit/alumnisphere/internal/app/models"
	"github.com/yigit/alumnisphere/internal/pkg/helpers"
)

func (e *env) runFeed(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("feed", flag.ContinueOnError)
	skip := fs.Int("skip", 0, "items to skip")
	limit := fs.Int("limit", helpers.DefaultLimit, "page size")
	if err := fs.Parse(args); err != nil {
		return err
	}

	posts, err := e.svc.Posts.Feed(ctx, *skip, *limit)
	if err != nil {
		return err
	}

	if len(posts) == 0 {
		e.printf("The feed is empty\n")
		return nil
	}

	for _, p := range posts {
		pin := ""
		if p.IsPinned {
			pin = " [pinned]"
		}
		tag := ""
		if p.Tag != "" {
			tag = " #" + p.Tag
		}
		e.printf("#%-4d %s%s%s\n", p.ID, p.AuthorName, pin, tag)
		e.printf("      %s\n", p.Content)
		e.printf("      %d likes, %d comments\n", p.LikeCount, p.CommentCount)
	}
	return nil
}

// mediaList collects repeated --media flags.
type mediaList []string

func (m *mediaList) String() string { return strings.Join(*m, ",") }

func (m *mediaList) Set(value string) error {
	*m = append(*m, value)
	return nil
}

func (e *env) runPost(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("post", flag.ContinueOnError)
	content := fs.String("content", "", "post text")
	tag := fs.String("tag", "", "optional tag: general, job, event, memory or question")
	var media mediaList
	fs.Var(&media, "media", "media file to attach (repeatable; order is kept)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *content == "" {
		return fmt.Errorf("post requires --content")
	}

	req := &models.CreatePostRequest{Content: *content}
	if *tag != "" {
		t := models.PostTag(*tag)
		switch t {
		case models.TagGeneral, models.TagJob, models.TagEvent, models.TagMemory, models.TagQuestion:
			req.Tag = &t
		default:
			return fmt.Errorf("unknown tag %q", *tag)
		}
	}

	progress := uploadProgress()
	post, err := e.svc.Posts.Create(ctx, req, media, progress)
	if err != nil {
		return err
	}

	e.printf("Posted #%d", post.ID)
	if len(post.Media) > 0 {
		e.printf(" with %d attachment(s)", len(post.Media))
	}
	e.printf("\n")
	return nil
}

// uploadProgress reports per-file progress on stderr when it is a terminal,
// and stays silent when output is piped.
func uploadProgress() func(uploaded, total int64) {
	if !stderrIsTerminal() {
		return nil
	}
	return func(uploaded, total int64) {
		if total <= 0 {
			return
		}
		fmt.Fprintf(os.Stderr, "\ruploading… %3d%%", uploaded*100/total)
		if uploaded >= total {
			fmt.Fprint(os.Stderr, "\n")
		}
	}
}
