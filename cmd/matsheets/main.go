package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"matsheets/internal"
	"matsheets/internal/config"
	"matsheets/internal/pipeline"
	"matsheets/internal/storage"
)

func main() {
	cfg, err := config.Load()
	must(err)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	switch cmd {
	case "convert":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		input := fs.String("input", "", "input materials list (csv, xlsx or html)")
		inType := fs.String("type", "", "csv|xlsx|html (inferred from extension if omitted)")
		out := fs.String("out", "", "output xlsx path")
		delimiter := fs.String("delimiter", "", "csv delimiter (sniffed if omitted)")
		nameCol := fs.String("name-col", "", "override name/material column")
		totalCol := fs.String("total-col", "", "override total/required column")
		missingCol := fs.String("missing-col", "", "override missing/needed column")
		availableCol := fs.String("available-col", "", "override available/have column")
		stackSize := fs.Int("stack-size", 0, "default stack size when no lookup matches")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*input) == "" {
			must(fmt.Errorf("--input is required"))
		}
		if _, err := os.Stat(*input); err != nil {
			must(fmt.Errorf("input file not found: %s", *input))
		}

		db := openDB(cfg)
		defer db.Close()
		svc := pipeline.NewConvertService(db, cfg)
		result, err := svc.Run(pipeline.ConvertOptions{
			InputPath:    *input,
			InputType:    *inType,
			OutputPath:   *out,
			Delimiter:    parseDelimiter(*delimiter),
			StackSize:    *stackSize,
			NameCol:      *nameCol,
			TotalCol:     *totalCol,
			MissingCol:   *missingCol,
			AvailableCol: *availableCol,
		})
		must(err)
		fmt.Printf("convert done items=%d output=%s\n", result.Items, result.Output)
		for _, role := range internal.Roles {
			if col, ok := result.Mapping[role]; ok {
				fmt.Printf("  %s <- %q\n", role, col)
			} else {
				fmt.Printf("  %s <- (none)\n", role)
			}
		}
	case "refs:set":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		item := fs.String("item", "", "item name")
		stackSize := fs.Int("stack-size", 0, "stack size for the item")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*item) == "" || *stackSize < 1 {
			must(fmt.Errorf("--item and a positive --stack-size are required"))
		}
		db := openDB(cfg)
		defer db.Close()
		must(db.UpsertStackRef(*item, *stackSize))
		fmt.Printf("ref saved item=%q stackSize=%d\n", *item, *stackSize)
	case "refs:list":
		db := openDB(cfg)
		defer db.Close()
		list, err := db.ListStackRefs()
		must(err)
		if len(list) == 0 {
			fmt.Println("no stack-size overrides stored")
			return
		}
		for _, ref := range list {
			fmt.Printf("%-32s %d\n", ref.Display, ref.StackSize)
		}
	case "refs:rm":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		item := fs.String("item", "", "item name")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*item) == "" {
			must(fmt.Errorf("--item is required"))
		}
		db := openDB(cfg)
		defer db.Close()
		removed, err := db.DeleteStackRef(*item)
		must(err)
		if !removed {
			must(fmt.Errorf("no override stored for %q", *item))
		}
		fmt.Printf("ref removed item=%q\n", *item)
	default:
		usage()
		os.Exit(1)
	}
}

func openDB(cfg config.Config) *storage.DB {
	db, err := storage.Open(cfg.DBPath)
	must(err)
	return db
}

func parseDelimiter(value string) rune {
	switch value {
	case "":
		return 0
	case `\t`, "tab":
		return '\t'
	default:
		return []rune(value)[0]
	}
}

func usage() {
	fmt.Println("usage: matsheets <command>")
	fmt.Println("commands:")
	fmt.Println("  convert --input=materials.csv [--out=./out/result.xlsx] [--type=csv|xlsx|html]")
	fmt.Println("          [--delimiter=';'] [--name-col=... --total-col=... --missing-col=... --available-col=...]")
	fmt.Println("          [--stack-size=64]")
	fmt.Println("  refs:set --item=\"Ender Pearl\" --stack-size=16")
	fmt.Println("  refs:list")
	fmt.Println("  refs:rm --item=\"Ender Pearl\"")
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
