// Package dimr reads and writes the XML pipeline configuration that wires
// model components and couplers into one run. It is a plain typed codec:
// structural decoding plus referential checks (couplers must name declared
// components); component semantics belong to the engines themselves.
package dimr

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"os"

	"github.com/delfland/hydroio/internal/ctxlog"
)

// Config is the root document.
type Config struct {
	XMLName       xml.Name      `xml:"dimrConfig"`
	Documentation Documentation `xml:"documentation"`
	Control       Control       `xml:"control"`
	Components    []Component   `xml:"component"`
	Couplers      []Coupler     `xml:"coupler"`
}

// Documentation is the file-level metadata block.
type Documentation struct {
	FileVersion  string `xml:"fileVersion"`
	CreatedBy    string `xml:"createdBy,omitempty"`
	CreationDate string `xml:"creationDate,omitempty"`
}

// Control declares the execution order: sequential starts and optionally
// one parallel group.
type Control struct {
	Parallel *Parallel `xml:"parallel,omitempty"`
	Starts   []Start   `xml:"start"`
}

// Parallel runs its members concurrently, with one start group exchanging
// data at a fixed interval.
type Parallel struct {
	StartGroup *StartGroup `xml:"startGroup,omitempty"`
	Starts     []Start     `xml:"start"`
}

// StartGroup is the coupled sub-schedule inside a parallel block.
type StartGroup struct {
	Time     string       `xml:"time"`
	Starts   []Start      `xml:"start"`
	Couplers []CouplerRef `xml:"coupler"`
}

// Start references a component by name.
type Start struct {
	Name string `xml:"name,attr"`
}

// CouplerRef references a coupler by name.
type CouplerRef struct {
	Name string `xml:"name,attr"`
}

// Component is one model engine instance.
type Component struct {
	Name            string `xml:"name,attr"`
	Library         string `xml:"library"`
	Process         string `xml:"process,omitempty"`
	MPICommunicator string `xml:"mpiCommunicator,omitempty"`
	WorkingDir      string `xml:"workingDir"`
	InputFile       string `xml:"inputFile"`
}

// Coupler moves quantities from one component to another.
type Coupler struct {
	Name            string `xml:"name,attr"`
	SourceComponent string `xml:"sourceComponent"`
	TargetComponent string `xml:"targetComponent"`
	Items           []Item `xml:"item"`
}

// Item is one exchanged quantity.
type Item struct {
	SourceName string `xml:"sourceName"`
	TargetName string `xml:"targetName"`
}

// Validate checks referential integrity: unique component names and
// couplers that only name declared components.
func (c *Config) Validate() error {
	names := make(map[string]bool, len(c.Components))
	for _, comp := range c.Components {
		if comp.Name == "" {
			return fmt.Errorf("component with empty name")
		}
		if names[comp.Name] {
			return fmt.Errorf("duplicate component %q", comp.Name)
		}
		names[comp.Name] = true
	}
	for _, cpl := range c.Couplers {
		if !names[cpl.SourceComponent] {
			return fmt.Errorf("coupler %q: unknown sourceComponent %q", cpl.Name, cpl.SourceComponent)
		}
		if !names[cpl.TargetComponent] {
			return fmt.Errorf("coupler %q: unknown targetComponent %q", cpl.Name, cpl.TargetComponent)
		}
	}
	return nil
}

// Read decodes and validates one configuration document.
func Read(r io.Reader) (*Config, error) {
	var cfg Config
	dec := xml.NewDecoder(r)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decoding dimr configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ReadFile loads one configuration file.
func ReadFile(ctx context.Context, path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	cfg, err := Read(f)
	if err != nil {
		return nil, err
	}
	ctxlog.FromContext(ctx).Debug("dimr configuration loaded.",
		"file", path, "components", len(cfg.Components), "couplers", len(cfg.Couplers))
	return cfg, nil
}

// Write validates and renders a configuration document.
func Write(w io.Writer, cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// WriteFile writes a configuration document to path.
func WriteFile(path string, cfg *Config) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return Write(f, cfg)
}
