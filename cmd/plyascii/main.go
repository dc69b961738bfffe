package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/recolude/ascii-ply/meshcloud"
	"github.com/recolude/ascii-ply/opensfm"
	"github.com/recolude/ascii-ply/ply"
	"github.com/recolude/rap/format"
	"github.com/recolude/rap/format/encoding"
	eulEnc "github.com/recolude/rap/format/encoding/euler"
	eventEnc "github.com/recolude/rap/format/encoding/event"
	posEnc "github.com/recolude/rap/format/encoding/position"
	rapio "github.com/recolude/rap/format/io"
	"github.com/recolude/rap/format/metadata"
	"github.com/urfave/cli/v2"
)

// writeRecording packages an already written PLY file as the single binary of
// a RAP recording at out.
func writeRecording(plyPath, out string, points int) error {
	data, err := os.ReadFile(plyPath)
	if err != nil {
		return err
	}

	recording := format.NewRecording(
		"ascii-ply",
		filepath.Base(plyPath),
		[]format.CaptureCollection{},
		[]format.Recording{},
		metadata.NewBlock(map[string]metadata.Property{
			"points": metadata.NewIntProperty(points),
		}),
		[]format.Binary{meshcloud.RapBinary(filepath.Base(plyPath), data, points)},
		[]format.BinaryReference{},
	)

	f, err := os.OpenFile(out, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	rapWriter := rapio.NewWriter(
		[]encoding.Encoder{
			posEnc.NewEncoder(posEnc.Oct24),
			eulEnc.NewEncoder(eulEnc.Raw16),
			eventEnc.NewEncoder(),
		},
		true,
		f,
		rapio.BST16,
	)

	_, err = rapWriter.Write(recording)
	return err
}

func pointCount(pc ply.PointCloud) int {
	n, err := pc.Rows(ply.Point())
	if err != nil {
		return 0
	}
	return n
}

func main() {
	app := &cli.App{
		Name:  "plyascii",
		Usage: "Writes point clouds as ASCII PLY files",
		Commands: []*cli.Command{
			{
				Name:  "opensfm",
				Usage: "export the points of an OpenSFM reconstruction",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "reconstruction",
						Usage:    "path to openSFM reconstruction file",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "out",
						Usage:    "path to the ply file to create",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "rap",
						Usage: "optional path to a rap recording embedding the ply file",
					},
				},
				Action: func(c *cli.Context) error {
					f, err := os.Open(c.String("reconstruction"))
					if err != nil {
						return err
					}
					defer f.Close()

					recon, err := opensfm.ReadReconstruction(f)
					if err != nil {
						return err
					}

					pc, err := opensfm.ToCloud(recon, filepath.Base(c.String("reconstruction")), time.Now())
					if err != nil {
						return err
					}

					if err := ply.Write(pc, c.String("out")); err != nil {
						return err
					}
					log.Printf("Exported %d points to %s", pointCount(pc), c.String("out"))

					if c.String("rap") == "" {
						return nil
					}
					return writeRecording(c.String("out"), c.String("rap"), pointCount(pc))
				},
			},
			{
				Name:  "convert",
				Usage: "rewrite the vertices of any ply file as an ASCII point cloud",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "in",
						Usage:    "path to the source ply file",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "out",
						Usage:    "path to the ply file to create",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "module",
						Usage: "module name recorded in the provenance comment",
						Value: "convert",
					},
				},
				Action: func(c *cli.Context) error {
					pc, err := meshcloud.ReadCloud(c.String("in"))
					if err != nil {
						return err
					}

					pc.Log(ply.Record{
						"module": c.String("module"),
						"source": filepath.Base(c.String("in")),
						"time":   time.Now().UTC(),
					})

					if err := ply.Write(pc, c.String("out")); err != nil {
						return fmt.Errorf("writing %s: %w", c.String("out"), err)
					}
					log.Printf("Exported %d points to %s", pointCount(pc), c.String("out"))
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
