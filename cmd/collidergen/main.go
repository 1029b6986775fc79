// collidergen is a CLI utility that extracts collision geometry from
// sprite images and prints it as YAML.
package main

import (
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"

	_ "golang.org/x/image/bmp" // BMP decoder registration
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/spritephys/internal/config"
	"github.com/Faultbox/spritephys/pkg/collider"
	"github.com/Faultbox/spritephys/pkg/geom"
	"github.com/Faultbox/spritephys/pkg/pixel"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "single":
		cmdSingle(args)
	case "multi":
		cmdMulti(args)
	case "outline":
		cmdOutline(args)
	case "heightfield", "hf":
		cmdHeightfield(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`collidergen - sprite image to collision geometry

Usage:
  collidergen <command> <image> [output.yaml]

Commands:
  single <image>       Convex collider set for the dominant blob
  multi <image>        One convex collider set per blob
  outline <image>      Raw boundary polyline per blob (world space)
  heightfield <image>  Terrain height profile, one sample per column

Extraction tunables are read from config.yaml if present.

Examples:
  collidergen single car.png
  collidergen multi boulders.png boulders.yaml
  collidergen heightfield terrain.png`)
}

// document is the YAML output envelope. Exactly one geometry field is
// populated, matching the command.
type document struct {
	Source      string      `yaml:"source"`
	Kind        string      `yaml:"kind"`
	Convex      []polyDoc   `yaml:"convex,omitempty"`
	Groups      [][]polyDoc `yaml:"groups,omitempty"`
	Outlines    []polyDoc   `yaml:"outlines,omitempty"`
	Heightfield *profileDoc `yaml:"heightfield,omitempty"`
}

// polyDoc is one polygon as [x, y] pairs.
type polyDoc [][2]float64

type profileDoc struct {
	Samples   []float64 `yaml:"samples,flow"`
	CellWidth float64   `yaml:"cell_width"`
	Height    float64   `yaml:"height"`
}

func cmdSingle(args []string) {
	img, doc := loadForCommand(args, "single")
	polys, err := collider.SingleConvexCollider(img, extractOptions()...)
	if err != nil {
		fatal(err)
	}
	for _, p := range polys {
		doc.Convex = append(doc.Convex, toPolyDoc(p))
	}
	emit(args, doc)
}

func cmdMulti(args []string) {
	img, doc := loadForCommand(args, "convex-multi")
	groups, err := collider.MultiConvexColliders(img, extractOptions()...)
	if err != nil {
		fatal(err)
	}
	for _, group := range groups {
		var g []polyDoc
		for _, p := range group {
			g = append(g, toPolyDoc(p))
		}
		doc.Groups = append(doc.Groups, g)
	}
	emit(args, doc)
}

func cmdOutline(args []string) {
	img, doc := loadForCommand(args, "outline")
	rings, err := collider.BoundaryGroups(img, extractOptions()...)
	if err != nil {
		fatal(err)
	}
	for _, r := range rings {
		doc.Outlines = append(doc.Outlines, toPolyDoc(r))
	}
	emit(args, doc)
}

func cmdHeightfield(args []string) {
	img, doc := loadForCommand(args, "heightfield")
	profile, err := collider.Heightfield(img, extractOptions()...)
	if err != nil {
		fatal(err)
	}
	doc.Heightfield = &profileDoc{
		Samples:   profile.Samples,
		CellWidth: profile.CellWidth,
		Height:    profile.Height,
	}
	emit(args, doc)
}

func loadForCommand(args []string, kind string) (pixel.Image, *document) {
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "Usage: collidergen %s <image> [output.yaml]\n", kind)
		os.Exit(1)
	}
	img, err := loadImage(args[0])
	if err != nil {
		fatal(err)
	}
	return img, &document{Source: args[0], Kind: kind}
}

func loadImage(path string) (*pixel.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return pixel.FromImage(img), nil
}

func extractOptions() []collider.Option {
	cfg, err := config.Load("")
	if err != nil {
		fatal(err)
	}
	return cfg.Extract.Options()
}

func toPolyDoc(p geom.Polygon) polyDoc {
	out := make(polyDoc, len(p))
	for i, v := range p {
		out[i] = [2]float64{v.X, v.Y}
	}
	return out
}

func emit(args []string, doc *document) {
	data, err := yaml.Marshal(doc)
	if err != nil {
		fatal(err)
	}
	if len(args) >= 2 {
		if err := os.WriteFile(args[1], data, 0o644); err != nil {
			fatal(err)
		}
		return
	}
	os.Stdout.Write(data)
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
