// Command frontdesk drives the booking engine against a running suitenest API.
//
//	frontdesk [-email E -password P] <command> [flags]
//
// Commands: search, rooms, room-types, book, bookings, lookup, cancel,
// add-room, update-room, delete-room.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"suitenest/internal/client"
	"suitenest/internal/frontdesk"
	"suitenest/internal/pkg/config"
	"suitenest/internal/pkg/telemetry"
)

type app struct {
	api     *client.Client
	session frontdesk.Session
	logger  *slog.Logger
	email   string
	pass    string
}

type command func(ctx context.Context, a *app, args []string) error

var commands = map[string]command{
	"search":      runSearch,
	"rooms":       runRooms,
	"room-types":  runRoomTypes,
	"book":        runBook,
	"bookings":    runBookings,
	"lookup":      runLookup,
	"cancel":      runCancel,
	"add-room":    runAddRoom,
	"update-room": runUpdateRoom,
	"delete-room": runDeleteRoom,
}

func main() {
	email := flag.String("email", os.Getenv("SUITENEST_EMAIL"), "account email for commands that need a login")
	password := flag.String("password", os.Getenv("SUITENEST_PASSWORD"), "account password")
	verbose := flag.Bool("v", false, "log remote failures")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() == 0 {
		usage()
		os.Exit(2)
	}
	cmd, ok := commands[flag.Arg(0)]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command %q\n", flag.Arg(0))
		usage()
		os.Exit(2)
	}

	level := slog.LevelError
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := config.LoadClientConfig()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	api, err := client.New(cfg, logger)
	if err != nil {
		logger.Error("failed to create client", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tp := telemetry.NewTracerProvider(config.TraceConfig{ServiceName: "suitenest-frontdesk", SampleRatio: 1})
	shutdown := telemetry.Install(tp, telemetry.NewPropagator())

	// One trace per command; the API logs the same trace_id for every call.
	ctx, span := tp.Tracer("suitenest/cmd/frontdesk").Start(ctx, "frontdesk "+flag.Arg(0))
	logger.Debug("command started", "command", flag.Arg(0), "trace_id", span.SpanContext().TraceID().String())

	a := &app{api: api, logger: logger, email: *email, pass: *password}
	err = cmd(ctx, a, flag.Args()[1:])
	span.End()
	if serr := shutdown(context.Background()); serr != nil {
		logger.Debug("tracer shutdown failed", "error", serr)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", describe(err))
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: frontdesk [-email E -password P] [-v] <command> [flags]")
	fmt.Fprintln(os.Stderr, "commands: search rooms room-types book bookings lookup cancel add-room update-room delete-room")
	flag.PrintDefaults()
}

// login signs in once and switches the client to the session token.
func (a *app) login(ctx context.Context) error {
	if !a.session.IsZero() {
		return nil
	}
	if a.email == "" || a.pass == "" {
		return errors.New("this command needs -email and -password (or SUITENEST_EMAIL/SUITENEST_PASSWORD)")
	}
	s, err := frontdesk.Login(ctx, a.api, a.email, a.pass)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	a.session = s
	a.api = a.api.WithToken(s.Token)
	return nil
}

// describe prefers the backend's own message.
func describe(err error) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}
