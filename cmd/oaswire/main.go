package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"go.yaml.in/yaml/v4"

	oaswire "github.com/offscale/cdd-web-ng-sub004"
	"github.com/offscale/cdd-web-ng-sub004/contentcodec"
	"github.com/offscale/cdd-web-ng-sub004/internal/mcpserver"
	"github.com/offscale/cdd-web-ng-sub004/multipart"
	"github.com/offscale/cdd-web-ng-sub004/serializer"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("oaswire v%s\n", oaswire.Version())
	case "help", "-h", "--help":
		printUsage()
	case "serialize":
		if err := handleSerialize(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "multipart":
		if err := handleMultipart(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "encode":
		if err := handleContent(os.Args[2:], "encode"); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "decode":
		if err := handleContent(os.Args[2:], "decode"); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := handleMCP(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}
}

// readValue loads a runtime value from the positional argument: a JSON
// document, or "-" to read the document from stdin. Numbers are preserved
// as json.Number so integer formatting survives serialization.
func readValue(arg string) (any, error) {
	doc := arg
	if arg == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		doc = string(data)
	}
	if strings.TrimSpace(doc) == "" {
		return nil, nil
	}
	dec := json.NewDecoder(strings.NewReader(doc))
	dec.UseNumber()
	var value any
	if err := dec.Decode(&value); err != nil {
		return nil, fmt.Errorf("parsing value document: %w", err)
	}
	return value, nil
}

// loadDocument materializes a descriptor or configuration document: the
// argument is either a path to a YAML/JSON file or the inline document
// itself. YAML is a superset of JSON, so one parser covers both syntaxes.
func loadDocument(arg string, target any) error {
	doc := []byte(arg)
	if info, err := os.Stat(arg); err == nil && !info.IsDir() {
		data, err := os.ReadFile(arg)
		if err != nil {
			return fmt.Errorf("reading %s: %w", arg, err)
		}
		doc = data
	}
	if err := yaml.Unmarshal(doc, target); err != nil {
		return fmt.Errorf("parsing document: %w", err)
	}
	return nil
}

// serializeFlags contains flags for the serialize command
type serializeFlags struct {
	descriptor    string
	name          string
	location      string
	style         string
	explode       string
	allowReserved bool
	contentType   string
}

func setupSerializeFlags() (*flag.FlagSet, *serializeFlags) {
	fs := flag.NewFlagSet("serialize", flag.ContinueOnError)
	flags := &serializeFlags{}

	fs.StringVar(&flags.descriptor, "descriptor", "", "parameter descriptor as a YAML/JSON document or file path")
	fs.StringVar(&flags.name, "name", "", "parameter name (required unless --descriptor provides it)")
	fs.StringVar(&flags.location, "in", "query", "parameter location: path, query, header, cookie")
	fs.StringVar(&flags.style, "style", "", "serialization style (default: per-location)")
	fs.StringVar(&flags.explode, "explode", "", "explode composite values: true or false (default: per-location)")
	fs.BoolVar(&flags.allowReserved, "allow-reserved", false, "keep RFC 3986 reserved characters unescaped")
	fs.StringVar(&flags.contentType, "content-type", "", "media type for content-based serialization")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: oaswire serialize [flags] <json-value|->\n\n")
		_, _ = fmt.Fprintf(output, "Serialize a runtime value into its OpenAPI parameter wire form.\n")
		_, _ = fmt.Fprintf(output, "Explicit flags override fields of a --descriptor document.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  oaswire serialize --name id '[3,4,5]'\n")
		_, _ = fmt.Fprintf(output, "  oaswire serialize --name id --in path '[1,2,3]'\n")
		_, _ = fmt.Fprintf(output, "  oaswire serialize --descriptor param.yaml '{\"tags\":[\"a\"]}'\n")
		_, _ = fmt.Fprintf(output, "  oaswire serialize --name q --style deepObject --explode true '{\"tags\":[\"a\"]}'\n")
	}

	return fs, flags
}

// buildDescriptor resolves the effective descriptor: the --descriptor
// document (inline or file) as the base, with explicitly set flags applied
// on top.
func buildDescriptor(fs *flag.FlagSet, flags *serializeFlags) (serializer.Descriptor, error) {
	d := serializer.Descriptor{Location: serializer.LocationQuery}
	if flags.descriptor != "" {
		d = serializer.Descriptor{}
		if err := loadDocument(flags.descriptor, &d); err != nil {
			return d, err
		}
		if d.Location == "" {
			d.Location = serializer.LocationQuery
		}
	}

	var flagErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "name":
			d.Name = flags.name
		case "in":
			d.Location = serializer.Location(flags.location)
		case "style":
			d.Style = serializer.Style(flags.style)
		case "allow-reserved":
			d.AllowReserved = flags.allowReserved
		case "content-type":
			d.ContentType = flags.contentType
		case "explode":
			switch flags.explode {
			case "true", "false":
				explode := flags.explode == "true"
				d.Explode = &explode
			default:
				flagErr = fmt.Errorf("invalid --explode value '%s'. Valid values: true, false", flags.explode)
			}
		}
	})
	if flagErr != nil {
		return d, flagErr
	}
	return d, d.Validate()
}

func handleSerialize(args []string) error {
	fs, flags := setupSerializeFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("serialize command requires exactly one value document")
	}

	d, err := buildDescriptor(fs, flags)
	if err != nil {
		return err
	}

	value, err := readValue(fs.Arg(0))
	if err != nil {
		return err
	}

	resolved := d.WithDefaults()
	switch d.Location {
	case serializer.LocationQuery:
		var params serializer.QueryParams
		serializer.SerializeQuery(&params, d, value)
		fmt.Println(params.Encode())
	case serializer.LocationPath:
		fmt.Println(serializer.SerializePath(
			d.Name, value, resolved.Style, resolved.Exploded(), d.AllowReserved, d.JSONContent()))
	case serializer.LocationHeader:
		fmt.Println(serializer.SerializeHeader(d.Name, value, resolved.Exploded(), d.JSONContent()))
	case serializer.LocationCookie:
		fmt.Println(serializer.SerializeCookie(
			d.Name, value, resolved.Style, resolved.Exploded(), d.JSONContent()))
	}
	return nil
}

// multipartFlags contains flags for the multipart command
type multipartFlags struct {
	config string
}

func setupMultipartFlags() (*flag.FlagSet, *multipartFlags) {
	fs := flag.NewFlagSet("multipart", flag.ContinueOnError)
	flags := &multipartFlags{}

	fs.StringVar(&flags.config, "config", "", "multipart configuration as a YAML/JSON document or file path")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: oaswire multipart [flags] <json-value|->\n\n")
		_, _ = fmt.Fprintf(output, "Assemble a multipart payload from a body value.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  oaswire multipart '{\"name\":\"rex\"}'\n")
		_, _ = fmt.Fprintf(output, "  oaswire multipart --config '{\"mediaType\":\"multipart/form-data\"}' '{\"name\":\"rex\"}'\n")
		_, _ = fmt.Fprintf(output, "  oaswire multipart --config upload.yaml '{\"name\":\"rex\"}'\n")
	}

	return fs, flags
}

func handleMultipart(args []string) error {
	fs, flags := setupMultipartFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("multipart command requires exactly one value document")
	}

	var cfg multipart.Config
	if flags.config != "" {
		if err := loadDocument(flags.config, &cfg); err != nil {
			return err
		}
	}

	value, err := readValue(fs.Arg(0))
	if err != nil {
		return err
	}

	payload := multipart.Serialize(value, cfg)
	if payload.Form != nil {
		for _, field := range payload.Form.Fields() {
			if field.Blob != nil {
				fmt.Printf("%s: <%d bytes, %s>\n", field.Name, len(field.Blob.Data), field.Blob.MediaType)
				continue
			}
			fmt.Printf("%s: %s\n", field.Name, field.Value)
		}
		return nil
	}

	fmt.Printf("Content-Type: %s\n\n", payload.Headers["Content-Type"])
	_, _ = os.Stdout.Write(payload.Raw)
	return nil
}

// contentFlags contains flags for the encode and decode commands
type contentFlags struct {
	descriptor string
}

func setupContentFlags(name string) (*flag.FlagSet, *contentFlags) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	flags := &contentFlags{}

	fs.StringVar(&flags.descriptor, "descriptor", "", "content descriptor tree as a YAML/JSON document or file path")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: oaswire %s [flags] <json-value|->\n\n", name)
		_, _ = fmt.Fprintf(output, "Apply schema-level content transforms (%s direction).\n\n", name)
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  oaswire %s --descriptor '{\"contentEncoding\":\"base64\"}' '\"test-content\"'\n", name)
	}

	return fs, flags
}

func handleContent(args []string, direction string) error {
	fs, flags := setupContentFlags(direction)

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("%s command requires exactly one value document", direction)
	}

	d := &contentcodec.Descriptor{}
	if flags.descriptor != "" {
		if err := loadDocument(flags.descriptor, d); err != nil {
			return err
		}
	}

	value, err := readValue(fs.Arg(0))
	if err != nil {
		return err
	}

	var result any
	if direction == "encode" {
		result = contentcodec.Encode(value, d)
	} else {
		result = contentcodec.Decode(value, d)
	}

	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("rendering result: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func handleMCP() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return mcpserver.Run(ctx)
}

// commandNames is the set of known subcommands, used for typo suggestions.
var commandNames = []string{
	"serialize", "multipart", "encode", "decode", "mcp", "version", "help",
}

// suggestCommand returns the closest known command within edit distance 2,
// or an empty string when nothing is close enough.
func suggestCommand(input string) string {
	best := ""
	bestDistance := 3
	for _, name := range commandNames {
		if d := editDistance(input, name); d < bestDistance {
			best = name
			bestDistance = d
		}
	}
	return best
}

// editDistance computes the Levenshtein distance between two strings.
func editDistance(a, b string) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func printUsage() {
	fmt.Println(`oaswire - OpenAPI Value Serialization Engine

Usage:
  oaswire <command> [options]

Commands:
  serialize   Serialize a value into its parameter wire form
  multipart   Assemble a multipart payload from a body value
  encode      Apply schema-level content transforms toward the wire
  decode      Reverse schema-level content transforms
  mcp         Run the MCP server over stdio
  version     Show version information
  help        Show this help message

Examples:
  oaswire serialize --name id '[3,4,5]'
  oaswire serialize --name id --in path --style label '[1,2,3]'
  oaswire multipart --config '{"mediaType":"multipart/form-data"}' '{"name":"rex"}'
  oaswire encode --descriptor '{"contentEncoding":"base64"}' '"test-content"'

Run 'oaswire <command> --help' for more information on a command.`)
}
