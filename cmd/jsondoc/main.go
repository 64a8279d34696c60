package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/ib-77/variant/pkg/jsondoc"
	"github.com/ib-77/variant/pkg/rop"
	"github.com/ib-77/variant/pkg/rop/chain"
)

func main() {
	in := flag.String("in", "", "JSON or YAML document to load (default: built-in sample)")
	format := flag.String("format", "compact", "output format: compact, indent, json or yaml")
	indent := flag.String("indent", "  ", "indent unit for -format indent")
	flag.Parse()

	ctx := context.Background()

	out := chain.Finally(
		chain.ThenTry(chain.Start(ctx, load(*in)), func(_ context.Context, doc jsondoc.Value) (string, error) {
			return write(doc, *format, *indent)
		}),
		func(_ context.Context, text string) error {
			_, err := io.WriteString(os.Stdout, text)
			return err
		},
		func(_ context.Context, err error) error { return err },
		func(_ context.Context, err error) error { return err },
	)
	if out != nil {
		log.Fatalf("jsondoc: %v", out)
	}
}

func load(path string) rop.Result[jsondoc.Value] {
	if path == "" {
		return rop.Success(sample())
	}

	f, err := os.Open(path)
	if err != nil {
		return rop.Fail[jsondoc.Value](err)
	}
	defer f.Close()

	var doc jsondoc.Value
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		doc, err = jsondoc.ParseYAML(f)
	default:
		doc, err = jsondoc.Parse(f)
	}
	if err != nil {
		return rop.Fail[jsondoc.Value](fmt.Errorf("%s: %w", path, err))
	}
	log.Printf("loaded %s (%s)", path, doc.Kind())
	return rop.Success(doc)
}

func write(doc jsondoc.Value, format, indent string) (string, error) {
	var b strings.Builder
	var err error
	switch format {
	case "compact":
		err = jsondoc.Render(&b, doc)
	case "indent":
		err = jsondoc.Render(&b, doc, jsondoc.WithIndent(indent))
	case "json":
		var data []byte
		data, err = doc.MarshalJSON()
		b.Write(data)
	case "yaml":
		err = jsondoc.EncodeYAML(&b, doc)
		return b.String(), err
	default:
		return "", fmt.Errorf("unknown format %q", format)
	}
	b.WriteByte('\n')
	return b.String(), err
}

func sample() jsondoc.Value {
	return jsondoc.Obj(
		jsondoc.M("Foo", jsondoc.Num(42)),
		jsondoc.M("Bar", jsondoc.Str("Hello, World!")),
		jsondoc.M("Baz", jsondoc.Arr(
			jsondoc.Obj(
				jsondoc.M("A", jsondoc.Num(43)),
				jsondoc.M("B", jsondoc.Str("Goodbye, World!")),
				jsondoc.M("C", jsondoc.NullValue()),
			),
			jsondoc.Num(44),
		)),
	)
}
