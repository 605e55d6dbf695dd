package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/MKhiriev/go-hair-salon/internal/adapter"
)

var (
	errNoCommand      = errors.New("no command given")
	errUnknownCommand = errors.New("unknown command")
	errMissingOperand = errors.New("missing operand")
)

type cli struct {
	api             adapter.SalonAPI
	out             io.Writer
	copyToClipboard func(text string) error
}

func (c *cli) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errNoCommand
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "token":
		return c.token(ctx, rest)
	case "is-admin":
		return withOperand(rest, func(email string) error {
			isAdmin, err := c.api.IsAdmin(ctx, email)
			if err != nil {
				return err
			}
			return c.print(map[string]bool{"isAdmin": isAdmin})
		})
	case "promote":
		return withOperand(rest, func(id string) error {
			return c.printResult(c.api.Promote(ctx, id))
		})
	case "delete-user":
		return withOperand(rest, func(id string) error {
			return c.printResult(c.api.DeleteUser(ctx, id))
		})
	case "blogs":
		return c.printResult(c.api.Blogs(ctx))
	case "delete-blog":
		return withOperand(rest, func(id string) error {
			return c.printResult(c.api.DeleteBlog(ctx, id))
		})
	case "comments":
		return withOperand(rest, func(email string) error {
			return c.printResult(c.api.MyComments(ctx, email))
		})
	case "delete-comment":
		return withOperand(rest, func(id string) error {
			return c.printResult(c.api.DeleteComment(ctx, id))
		})
	case "delete-product":
		return withOperand(rest, func(id string) error {
			return c.printResult(c.api.DeleteProduct(ctx, id))
		})
	default:
		return fmt.Errorf("%w: %q", errUnknownCommand, cmd)
	}
}

func (c *cli) token(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("token", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	copyToken := fs.Bool("copy", false, "copy the token to the clipboard")
	if err := fs.Parse(args); err != nil {
		return err
	}

	return withOperand(fs.Args(), func(email string) error {
		token, err := c.api.IssueToken(ctx, email)
		if err != nil {
			return err
		}

		if *copyToken {
			if err = c.copyToClipboard(token); err != nil {
				return fmt.Errorf("copy to clipboard: %w", err)
			}
		}

		_, err = fmt.Fprintln(c.out, token)
		return err
	})
}

func withOperand(args []string, fn func(operand string) error) error {
	if len(args) == 0 || args[0] == "" {
		return errMissingOperand
	}
	return fn(args[0])
}

func (c *cli) printResult(v any, err error) error {
	if err != nil {
		return err
	}
	return c.print(v)
}

func (c *cli) print(v any) error {
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
