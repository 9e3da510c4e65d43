// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	searchdb "github.com/poiesic/searchdb"
	"github.com/poiesic/searchdb/ingestion"
	"github.com/poiesic/searchdb/lzw"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "searchdb",
		Usage: "In-memory text search over a directory of documents",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "warn",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "search",
				Usage:  "Rank documents in a directory against a query by TF-IDF",
				Action: searchCommand,
				Flags: append(corpusFlags(),
					&cli.IntFlag{
						Name:  "top",
						Usage: "Maximum number of results",
						Value: 10,
					},
				),
			},
			{
				Name:   "boolean",
				Usage:  "Evaluate a Boolean query (AND/OR/NOT, parentheses) over a directory",
				Action: booleanCommand,
				Flags:  corpusFlags(),
			},
			{
				Name:   "compress",
				Usage:  "LZW-compress stdin to lowercase hex on stdout",
				Action: compressCommand,
			},
			{
				Name:   "decompress",
				Usage:  "Decode a hex LZW frame from stdin to stdout",
				Action: decompressCommand,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func corpusFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "dir",
			Aliases:  []string{"d"},
			Usage:    "Directory of documents, one per file",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "query",
			Aliases:  []string{"q"},
			Usage:    "Query string",
			Required: true,
		},
		&cli.BoolFlag{
			Name:  "lemmatize",
			Usage: "Use the irregular-forms lemmatizer instead of plain stemming",
		},
	}
}

func setupLogger(c *cli.Context) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.String("log-level"))); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.String("log-level"), err)
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
	return nil
}

// loadCorpus indexes every regular file in dir, using the file name as
// the document title.
func loadCorpus(c *cli.Context) (*searchdb.Database, error) {
	options := searchdb.DefaultOptions()
	options.Pipeline.UseLemmatization = c.Bool("lemmatize")

	db, err := searchdb.New(options)
	if err != nil {
		return nil, err
	}

	dir := c.String("dir")
	entries, err := os.ReadDir(dir)
	if err != nil {
		db.Close()
		return nil, err
	}

	var docs []ingestion.Document
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		body, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			slog.Warn("skipping unreadable file", "file", entry.Name(), "err", err)
			continue
		}
		docs = append(docs, ingestion.Document{Body: string(body), Title: entry.Name()})
	}

	pipeline, err := ingestion.NewPipeline(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	defer pipeline.Release()

	pipeline.Ingest(docs)
	slog.Info("indexed corpus", "documents", db.DocumentCount(), "terms", db.TermCount())
	return db, nil
}

func searchCommand(c *cli.Context) error {
	db, err := loadCorpus(c)
	if err != nil {
		return err
	}
	defer db.Close()

	results := db.Search(c.String("query"), c.Int("top"))
	if len(results) == 0 {
		fmt.Println("no results")
		return nil
	}
	for rank, hit := range results {
		fmt.Printf("%2d. [%d] %-40s %.6f\n", rank+1, hit.DocID, db.GetTitle(hit.DocID), hit.Score)
	}
	return nil
}

func booleanCommand(c *cli.Context) error {
	db, err := loadCorpus(c)
	if err != nil {
		return err
	}
	defer db.Close()

	ids := db.BooleanQuery(c.String("query"))
	if len(ids) == 0 {
		fmt.Println("no results")
		return nil
	}
	for _, id := range ids {
		fmt.Printf("[%d] %s\n", id, db.GetTitle(id))
	}
	return nil
}

func compressCommand(_ *cli.Context) error {
	input, err := readStdin()
	if err != nil {
		return err
	}
	fmt.Println(lzw.EncodeHex(lzw.New().Compress(input)))
	return nil
}

func decompressCommand(_ *cli.Context) error {
	input, err := readStdin()
	if err != nil {
		return err
	}
	frame := lzw.DecodeHex(strings.TrimSpace(string(input)))
	if frame == nil {
		return fmt.Errorf("input is not a hex-encoded frame")
	}
	os.Stdout.Write(lzw.New().Decompress(frame))
	return nil
}

func readStdin() ([]byte, error) {
	return io.ReadAll(os.Stdin)
}
