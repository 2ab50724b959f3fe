package main

import (
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"go.uber.org/zap"

	geometrycodec "github.com/wippyai/geometry-codec"
	"github.com/wippyai/geometry-codec/engine"
	"github.com/wippyai/geometry-codec/transcoder"
)

func main() {
	var (
		wkbArg      = flag.String("wkb", "", "WKB input: path to a file, or inline hex")
		geojsonArg  = flag.String("geojson", "", "GeoJSON input: path to a file, or - for stdin")
		configPath  = flag.String("config", "", "Path to a TOML display config")
		interactive = flag.Bool("i", false, "Interactive viewer")
		verbose     = flag.Bool("v", false, "Verbose engine logging")
	)
	flag.Parse()

	if *wkbArg == "" && *geojsonArg == "" && !*interactive {
		fmt.Fprintln(os.Stderr, "Usage: geomconv -wkb <file|hex> [-i] [-config file.toml]")
		fmt.Fprintln(os.Stderr, "       geomconv -geojson <file|-> [-config file.toml]")
		fmt.Fprintln(os.Stderr, "       geomconv -i  (interactive, paste WKB)")
		os.Exit(1)
	}

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		engine.SetLogger(logger)
	}

	if err := run(*wkbArg, *geojsonArg, *configPath, *interactive); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(wkbArg, geojsonArg, configPath string, interactive bool) error {
	cfg := defaultDisplayConfig()
	if configPath != "" {
		var err error
		cfg, err = loadDisplayConfig(configPath)
		if err != nil {
			return err
		}
	}

	eng := engine.NewMem()

	switch {
	case wkbArg != "":
		data, err := readWKB(wkbArg)
		if err != nil {
			return err
		}
		g, err := transcoder.NewDecoder(eng).DecodeWKB(data)
		if err != nil {
			return err
		}
		if interactive {
			return runInteractive(cfg, g)
		}
		return printGeoJSON(g, cfg)

	case geojsonArg != "":
		data, err := readInput(geojsonArg)
		if err != nil {
			return err
		}
		wkb, err := encodeGeoJSON(eng, data)
		if err != nil {
			return err
		}
		fmt.Println(hex.EncodeToString(wkb))
		return nil

	case interactive:
		return runInteractive(cfg, nil)
	}

	return fmt.Errorf("no input: use -wkb, -geojson, or -i")
}

// readWKB accepts either a path to a binary file or an inline hex string.
func readWKB(arg string) ([]byte, error) {
	if data, err := os.ReadFile(arg); err == nil {
		// Hex-encoded file content is common for WKB dumps.
		text := strings.TrimSpace(string(data))
		if decoded, err := hex.DecodeString(text); err == nil {
			return decoded, nil
		}
		return data, nil
	}
	data, err := hex.DecodeString(strings.TrimSpace(arg))
	if err != nil {
		return nil, fmt.Errorf("-wkb is neither a readable file nor hex: %w", err)
	}
	return data, nil
}

func readInput(arg string) ([]byte, error) {
	if arg == "-" {
		return io.ReadAll(os.Stdin)
	}
	data, err := os.ReadFile(arg)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return data, nil
}

// encodeGeoJSON turns a GeoJSON document into WKB. Bare geometry objects go
// through the transcoder directly; Feature and FeatureCollection documents
// go through the orb bridge, a collection becoming one GeometryCollection.
func encodeGeoJSON(eng *engine.Mem, data []byte) ([]byte, error) {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("parse GeoJSON: %w", err)
	}

	switch head.Type {
	case "Feature":
		f, err := geojson.UnmarshalFeature(data)
		if err != nil {
			return nil, fmt.Errorf("parse feature: %w", err)
		}
		return exportOrb(eng, f.Geometry)

	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			return nil, fmt.Errorf("parse feature collection: %w", err)
		}
		coll := make(orb.Collection, 0, len(fc.Features))
		for _, f := range fc.Features {
			coll = append(coll, f.Geometry)
		}
		return exportOrb(eng, coll)
	}

	var g geometrycodec.Geometry
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("parse geometry: %w", err)
	}
	return transcoder.NewEncoder(eng).EncodeWKB(&g)
}

func exportOrb(eng *engine.Mem, g orb.Geometry) ([]byte, error) {
	h, err := engine.FromOrb(eng, g)
	if err != nil {
		return nil, err
	}
	defer eng.Destroy(h)
	return eng.ExportWKB(h)
}

func printGeoJSON(g *geometrycodec.Geometry, cfg displayConfig) error {
	var out []byte
	var err error
	if cfg.Pretty {
		out, err = json.MarshalIndent(g, "", "  ")
	} else {
		out, err = json.Marshal(g)
	}
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
