// Command salonctl is an operator client for the hair salon API.
//
// Usage:
//
//	salonctl [-addr URL] [-timeout D] [-token T] <command> [args]
//
// Commands:
//
//	token [-copy] <email>   request an access token (optionally copy it)
//	is-admin <email>        print whether the account is an admin
//	promote <id>            grant the admin role (admin token)
//	delete-user <id>        remove a user (admin token)
//	blogs                   list blog posts
//	delete-blog <id>        remove a blog post (admin token)
//	comments <email>        list own comments (token for email)
//	delete-comment <id>     remove a comment (any token)
//	delete-product <id>     remove a product
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-hair-salon/internal/adapter"
	"github.com/MKhiriev/go-hair-salon/internal/config"
	"github.com/MKhiriev/go-hair-salon/internal/logger"
	"github.com/MKhiriev/go-hair-salon/models"
	"github.com/atotto/clipboard"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewCLILogger("salonctl")

	cfg, args, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if len(args) > 0 && args[0] == "version" {
		fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
		return
	}

	api, err := adapter.NewHTTPSalonAdapter(*cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create salon adapter")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	c := &cli{api: api, out: os.Stdout, copyToClipboard: clipboard.WriteAll}
	if err = c.run(ctx, args); err != nil {
		log.Error().Err(err).Msg("command failed")
		stop()
		os.Exit(1)
	}
}
