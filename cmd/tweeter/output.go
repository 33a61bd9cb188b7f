package main

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// printer writes results in the selected output format. Streams write one
// document per message: a JSON line, or a YAML document.
type printer struct {
	format string
	w      io.Writer
	yaml   *yaml.Encoder
}

func newPrinter(w io.Writer, format string) *printer {
	p := &printer{format: format, w: w}
	if format == "yaml" {
		p.yaml = yaml.NewEncoder(w)
		p.yaml.SetIndent(2)
	}
	return p
}

// generic round trips v through JSON so raw messages and typed payloads
// print the same way in every format.
func generic(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (p *printer) print(v any) error {
	out, err := generic(v)
	if err != nil {
		return fmt.Errorf("format result: %w", err)
	}

	if p.yaml != nil {
		return p.yaml.Encode(out)
	}

	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// line writes a single compact JSON line, or a YAML document.
func (p *printer) line(v any) error {
	out, err := generic(v)
	if err != nil {
		return fmt.Errorf("format result: %w", err)
	}

	if p.yaml != nil {
		return p.yaml.Encode(out)
	}
	return json.NewEncoder(p.w).Encode(out)
}

func (p *printer) Close() error {
	if p.yaml != nil {
		return p.yaml.Close()
	}
	return nil
}
