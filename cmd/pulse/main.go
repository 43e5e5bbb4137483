// Package main implements the pulse CLI for creating, validating,
// signing, encoding, and serving protocol messages.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/pulseprotocolorg-cyber/pulse-go/codec"
	"github.com/pulseprotocolorg-cyber/pulse-go/config"
	"github.com/pulseprotocolorg-cyber/pulse-go/message"
	"github.com/pulseprotocolorg-cyber/pulse-go/metric"
	"github.com/pulseprotocolorg-cyber/pulse-go/security"
	"github.com/pulseprotocolorg-cyber/pulse-go/transport"
	"github.com/pulseprotocolorg-cyber/pulse-go/vocabulary"
)

const (
	Version = "0.1.0"
	appName = "pulse"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		printUsage()
		return fmt.Errorf("command required")
	}

	switch args[0] {
	case "create":
		return cmdCreate(args[1:])
	case "validate":
		return cmdValidate(args[1:])
	case "sign":
		return cmdSign(args[1:])
	case "verify":
		return cmdVerify(args[1:])
	case "encode":
		return cmdEncode(args[1:])
	case "decode":
		return cmdDecode(args[1:])
	case "compare":
		return cmdCompare(args[1:])
	case "vocab":
		return cmdVocab(args[1:])
	case "serve":
		return cmdServe(args[1:])
	case "version", "--version":
		fmt.Printf("%s version %s\n", appName, Version)
		return nil
	case "help", "--help", "-h":
		printUsage()
		return nil
	default:
		printUsage()
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `%s - semantic message protocol CLI

Usage:
  pulse create --action ACT.QUERY.DATA [--target ENT.DATA.TEXT] [-o message.json]
  pulse validate message.json [--check-freshness]
  pulse sign message.json --key my-secret-key [-o signed.json]
  pulse verify signed.json --key my-secret-key
  pulse encode message.json [--format binary|compact|json] [-o out]
  pulse decode message.bin [--format binary|compact|json] [-o out.json]
  pulse compare message.json
  pulse vocab search <query> | categories | list <category> | show <id>
  pulse serve [--config pulse.json]
  pulse version
`, appName)
}

// readMessage loads and JSON-decodes a message file.
func readMessage(path string) (*message.Message, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return codec.New().Decode(data, codec.FormatJSON)
}

// writeOrPrint writes data to path, or stdout when path is empty.
func writeOrPrint(path string, data []byte, note string) error {
	if path == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return err
	}
	fmt.Printf("%s: %s\n", note, path)
	return nil
}

func encodeJSON(m *message.Message, indent int) ([]byte, error) {
	return (&codec.JSONCodec{Indent: indent}).Encode(m)
}

func cmdCreate(args []string) error {
	flags := pflag.NewFlagSet("create", pflag.ContinueOnError)
	action := flags.String("action", "", "action concept (e.g. ACT.QUERY.DATA)")
	target := flags.String("target", "", "target object concept (e.g. ENT.DATA.TEXT)")
	params := flags.String("parameters", "", "JSON object of parameters")
	sender := flags.String("sender", "cli-agent", "sender agent ID")
	msgType := flags.String("type", string(message.TypeRequest), "message type")
	noValidate := flags.Bool("no-validate", false, "skip validation")
	output := flags.StringP("output", "o", "", "output file (default stdout)")
	indent := flags.Int("indent", 2, "JSON indentation")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if *action == "" {
		return fmt.Errorf("create: --action is required")
	}

	opts := []message.Option{
		message.WithSender(*sender),
		message.WithType(message.Type(*msgType)),
	}
	if *target != "" {
		opts = append(opts, message.WithTarget(*target))
	}
	if *params != "" {
		var parameters map[string]any
		if err := json.Unmarshal([]byte(*params), &parameters); err != nil {
			return fmt.Errorf("create: invalid JSON in --parameters: %w", err)
		}
		opts = append(opts, message.WithParameters(parameters))
	}
	if *noValidate {
		opts = append(opts, message.WithoutValidation())
	}

	msg, err := message.New(*action, opts...)
	if err != nil {
		return err
	}
	data, err := encodeJSON(msg, *indent)
	if err != nil {
		return err
	}
	return writeOrPrint(*output, data, "Message created")
}

func cmdValidate(args []string) error {
	flags := pflag.NewFlagSet("validate", pflag.ContinueOnError)
	checkFreshness := flags.Bool("check-freshness", false, "also check timestamp freshness")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() != 1 {
		return fmt.Errorf("validate: exactly one message file required")
	}

	msg, err := readMessage(flags.Arg(0))
	if err != nil {
		return err
	}
	if err := message.Validate(msg, *checkFreshness); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Println("Message is valid")
	fmt.Printf("  Action: %s\n", msg.Content.Action)
	fmt.Printf("  Type:   %s\n", msg.Type)
	fmt.Printf("  Sender: %s\n", msg.Envelope.Sender)
	return nil
}

func cmdSign(args []string) error {
	flags := pflag.NewFlagSet("sign", pflag.ContinueOnError)
	key := flags.String("key", "", "secret key for signing")
	output := flags.StringP("output", "o", "", "output file (default stdout)")
	indent := flags.Int("indent", 2, "JSON indentation")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if *key == "" {
		return fmt.Errorf("sign: --key is required")
	}
	if flags.NArg() != 1 {
		return fmt.Errorf("sign: exactly one message file required")
	}

	msg, err := readMessage(flags.Arg(0))
	if err != nil {
		return err
	}
	signature, err := security.NewManager(*key).Sign(msg)
	if err != nil {
		return err
	}

	data, err := encodeJSON(msg, *indent)
	if err != nil {
		return err
	}
	if err := writeOrPrint(*output, data, "Message signed"); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "  Signature: %s...\n", signature[:32])
	return nil
}

func cmdVerify(args []string) error {
	flags := pflag.NewFlagSet("verify", pflag.ContinueOnError)
	key := flags.String("key", "", "secret key for verification")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if *key == "" {
		return fmt.Errorf("verify: --key is required")
	}
	if flags.NArg() != 1 {
		return fmt.Errorf("verify: exactly one message file required")
	}

	msg, err := readMessage(flags.Arg(0))
	if err != nil {
		return err
	}
	valid, err := security.NewManager(*key).Verify(msg)
	if err != nil {
		return err
	}
	if !valid {
		return fmt.Errorf("signature is invalid (message may be tampered)")
	}

	fmt.Println("Signature is valid")
	fmt.Printf("  Action: %s\n", msg.Content.Action)
	fmt.Printf("  Sender: %s\n", msg.Envelope.Sender)
	return nil
}

func cmdEncode(args []string) error {
	flags := pflag.NewFlagSet("encode", pflag.ContinueOnError)
	format := flags.String("format", string(codec.FormatBinary), "output format (json, binary, compact)")
	output := flags.StringP("output", "o", "", "output file (default derived from input)")
	compare := flags.Bool("compare", false, "also show a size comparison")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() != 1 {
		return fmt.Errorf("encode: exactly one message file required")
	}

	inputPath := flags.Arg(0)
	msg, err := readMessage(inputPath)
	if err != nil {
		return err
	}

	facade := codec.New()
	data, err := facade.Encode(msg, codec.Format(*format))
	if err != nil {
		return err
	}

	outputPath := *output
	if outputPath == "" {
		outputPath = derivedOutputPath(inputPath, codec.Format(*format))
	}
	if err := os.WriteFile(outputPath, data, 0o600); err != nil {
		return err
	}
	fmt.Printf("Encoded to %s: %s\n", *format, outputPath)
	fmt.Printf("  Size: %d bytes\n", len(data))

	if *compare {
		sizes, err := facade.SizeComparison(msg)
		if err != nil {
			return err
		}
		printComparison(sizes)
	}
	return nil
}

// derivedOutputPath picks an output name from the input name and the
// target format.
func derivedOutputPath(inputPath string, format codec.Format) string {
	base := strings.TrimSuffix(inputPath, ".json")
	switch format {
	case codec.FormatBinary:
		return base + ".bin"
	case codec.FormatCompact:
		return base + ".pulse"
	default:
		return base + ".out.json"
	}
}

func cmdDecode(args []string) error {
	flags := pflag.NewFlagSet("decode", pflag.ContinueOnError)
	format := flags.String("format", "", "input format (default auto-detect)")
	output := flags.StringP("output", "o", "", "output file (default stdout)")
	indent := flags.Int("indent", 2, "JSON indentation")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() != 1 {
		return fmt.Errorf("decode: exactly one encoded file required")
	}

	data, err := os.ReadFile(flags.Arg(0))
	if err != nil {
		return err
	}
	msg, err := codec.New().Decode(data, codec.Format(*format))
	if err != nil {
		return err
	}

	out, err := encodeJSON(msg, *indent)
	if err != nil {
		return err
	}
	return writeOrPrint(*output, out, "Decoded to")
}

func cmdCompare(args []string) error {
	flags := pflag.NewFlagSet("compare", pflag.ContinueOnError)
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() != 1 {
		return fmt.Errorf("compare: exactly one message file required")
	}

	msg, err := readMessage(flags.Arg(0))
	if err != nil {
		return err
	}
	sizes, err := codec.New().SizeComparison(msg)
	if err != nil {
		return err
	}
	printComparison(sizes)
	return nil
}

func printComparison(sizes codec.SizeComparison) {
	fmt.Println("Size comparison:")
	fmt.Printf("  JSON:    %d bytes\n", sizes.JSON)
	fmt.Printf("  Binary:  %d bytes (%.2fx smaller, %.1f%% savings)\n",
		sizes.Binary, sizes.BinaryReduction, sizes.BinarySavingsPercent)
	fmt.Printf("  Compact: %d bytes (%.2fx smaller, %.1f%% savings)\n",
		sizes.Compact, sizes.CompactReduction, sizes.CompactSavingsPercent)
}

func cmdVocab(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("vocab: subcommand required (search, categories, list, show)")
	}

	switch args[0] {
	case "search":
		if len(args) < 2 {
			return fmt.Errorf("vocab search: query required")
		}
		matches := vocabulary.Search(strings.Join(args[1:], " "))
		if len(matches) == 0 {
			fmt.Println("No matching concepts")
			return nil
		}
		for _, id := range matches {
			concept, _ := vocabulary.Get(id)
			fmt.Printf("%s\t%s\n", id, concept.Description)
		}
		return nil

	case "categories":
		for _, category := range vocabulary.Categories() {
			fmt.Printf("%s\t%d concepts\n", category, len(vocabulary.ListByCategory(category)))
		}
		return nil

	case "list":
		if len(args) != 2 {
			return fmt.Errorf("vocab list: category required")
		}
		ids := vocabulary.ListByCategory(args[1])
		if len(ids) == 0 {
			return fmt.Errorf("vocab list: unknown category %q", args[1])
		}
		for _, id := range ids {
			fmt.Println(id)
		}
		return nil

	case "show":
		if len(args) != 2 {
			return fmt.Errorf("vocab show: concept ID required")
		}
		concept, ok := vocabulary.Get(args[1])
		if !ok {
			return fmt.Errorf("vocab show: unknown concept %q", args[1])
		}
		fmt.Printf("ID:          %s\n", concept.ID)
		fmt.Printf("Category:    %s\n", concept.Category)
		if concept.Subcategory != "" {
			fmt.Printf("Subcategory: %s\n", concept.Subcategory)
		}
		fmt.Printf("Description: %s\n", concept.Description)
		if len(concept.Examples) > 0 {
			fmt.Printf("Examples:    %s\n", strings.Join(concept.Examples, ", "))
		}
		return nil

	default:
		return fmt.Errorf("vocab: unknown subcommand %q", args[0])
	}
}

func cmdServe(args []string) error {
	flags := pflag.NewFlagSet("serve", pflag.ContinueOnError)
	configPath := flags.String("config", "", "configuration file (JSON)")
	logLevel := flags.String("log-level", "info", "log level (debug, info, warn, error)")
	if err := flags.Parse(args); err != nil {
		return err
	}

	logger := setupLogger(*logLevel)
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	registry := metric.NewRegistry()
	srv, err := transport.NewServer(cfg,
		transport.WithServerLogger(logger),
		transport.WithServerMetrics(registry))
	if err != nil {
		return err
	}

	// Built-in acknowledgement handler; applications embed the server
	// and register their own.
	srv.Handle("*", func(_ context.Context, msg *message.Message) (*message.Message, error) {
		return message.New("META.ACK",
			message.WithType(message.TypeResponse),
			message.WithSender(cfg.Agent.ID),
			message.WithReceiver(msg.Envelope.Sender),
			message.WithParameters(map[string]any{"request_id": msg.Envelope.MessageID}))
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	logger.Info("server started",
		"version", Version,
		"agent", cfg.Agent.ID,
		"address", cfg.Server.Address())

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}
