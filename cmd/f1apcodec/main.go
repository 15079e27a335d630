/*
 * f1apcodec decodes, encodes and inspects F1AP interface-management messages
 */

package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/debug"
	"sync"
	"syscall"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v2"

	"github.com/free5gc/f1ap/internal/inspector"
	"github.com/free5gc/f1ap/internal/logger"
	"github.com/free5gc/f1ap/pkg/codec"
	"github.com/free5gc/f1ap/pkg/factory"
	"github.com/free5gc/f1ap/pkg/model"
)

func main() {
	defer func() {
		if p := recover(); p != nil {
			// Print stack for panic to log. Fatalf() will let program exit.
			logger.MainLog.Fatalf("panic: %v\n%s", p, string(debug.Stack()))
		}
	}()

	if err := newApp().Run(os.Args); err != nil {
		logger.MainLog.Errorf("f1apcodec run error: %v", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "f1apcodec"
	app.Usage = "F1AP interface-management message codec"
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Load configuration from `FILE`",
		},
	}
	app.Before = func(c *cli.Context) error {
		return initConfig(c.String("config"))
	}
	app.Commands = []*cli.Command{
		{
			Name:      "decode",
			Usage:     "decode an F1AP PDU and dump the message",
			ArgsUsage: "[HEX]",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Usage: "read the PDU from `FILE` (\"-\" for stdin)"},
				&cli.BoolFlag{Name: "raw", Usage: "the input is binary, not hex text"},
				&cli.StringFlag{Name: "type", Aliases: []string{"t"}, Usage: "fail unless the PDU is message `TYPE`"},
				&cli.BoolFlag{Name: "json", Usage: "print JSON instead of a spew dump"},
			},
			Action: decodeAction,
		},
		{
			Name:      "encode",
			Usage:     "encode a message given as JSON and print the PDU as hex",
			ArgsUsage: "TYPE",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Value: "-", Usage: "read the JSON message from `FILE` (\"-\" for stdin)"},
			},
			Action: encodeAction,
		},
		{
			Name:   "types",
			Usage:  "list the supported message types",
			Action: typesAction,
		},
		{
			Name:   "serve",
			Usage:  "run the HTTP inspector",
			Action: serveAction,
		},
	}
	return app
}

func initConfig(cfgPath string) error {
	cfg := factory.DefaultConfig()
	if cfgPath != "" {
		var err error
		if cfg, err = factory.ReadConfig(cfgPath); err != nil {
			return err
		}
	}
	factory.F1apConfig = cfg

	if !cfg.GetLogEnable() {
		logger.Log.SetOutput(io.Discard)
	}
	if err := logger.SetLogLevel(cfg.GetLogLevel()); err != nil {
		return errors.WithMessage(err, "log level")
	}
	logger.SetReportCaller(cfg.GetLogReportCaller())
	return nil
}

func newCodec() (*codec.Codec, error) {
	policy, err := factory.F1apConfig.GetCodecPolicy()
	if err != nil {
		return nil, err
	}
	return codec.New(codec.WithPolicy(policy)), nil
}

func readInput(c *cli.Context, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(c.App.Reader)
	}
	return os.ReadFile(path)
}

func decodeAction(c *cli.Context) error {
	var b []byte
	var err error
	switch {
	case c.String("file") != "":
		if b, err = readInput(c, c.String("file")); err != nil {
			return err
		}
		if !c.Bool("raw") {
			b, err = inspector.DecodeHex(string(b))
		}
	case c.Args().Present():
		b, err = inspector.DecodeHex(c.Args().First())
	default:
		return errors.New("decode: give the PDU as an argument or with --file")
	}
	if err != nil {
		return errors.WithMessage(err, "decode input")
	}

	want := model.MessageTypeUnknown
	if t := c.String("type"); t != "" {
		if want, err = model.ParseMessageType(t); err != nil {
			return err
		}
	}

	cdc, err := newCodec()
	if err != nil {
		return err
	}
	m, warnings, err := cdc.DecodeType(b, want)
	if err != nil {
		return err
	}

	out := c.App.Writer
	if c.Bool("json") {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(inspector.DecodeResponse{
			MessageType: m.MessageType().String(),
			Message:     m,
			Warnings:    warnings,
		})
	}
	fmt.Fprintf(out, "%s (%d bytes)\n", m.MessageType(), len(b))
	for _, w := range warnings {
		fmt.Fprintf(out, "warning: %s\n", w)
	}
	cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true}
	cfg.Fdump(out, m)
	return nil
}

func encodeAction(c *cli.Context) error {
	if !c.Args().Present() {
		return errors.New("encode: message type required")
	}
	mt, err := model.ParseMessageType(c.Args().First())
	if err != nil {
		return err
	}
	m, err := model.NewMessage(mt)
	if err != nil {
		return err
	}
	content, err := readInput(c, c.String("file"))
	if err != nil {
		return err
	}
	if err = json.Unmarshal(content, m); err != nil {
		return errors.Wrapf(err, "parse %s", mt)
	}

	cdc, err := newCodec()
	if err != nil {
		return err
	}
	b, err := cdc.Encode(m)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, hex.EncodeToString(b))
	return nil
}

func typesAction(c *cli.Context) error {
	for _, t := range model.MessageTypes() {
		fmt.Fprintln(c.App.Writer, t)
	}
	return nil
}

func serveAction(c *cli.Context) error {
	server, err := inspector.NewServer(factory.F1apConfig, prometheus.NewRegistry())
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var wg sync.WaitGroup
	err = server.Run(ctx, &wg)
	wg.Wait()
	logger.MainLog.Infof("f1apcodec serve terminated")
	return err
}
