// Command picks evaluates one query against the album dataset and prints
// the result, without the terminal interface.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"

	flag "github.com/spf13/pflag"

	"github.com/llehouerou/aotw/internal/album"
	"github.com/llehouerou/aotw/internal/config"
	"github.com/llehouerou/aotw/internal/errmsg"
	"github.com/llehouerou/aotw/internal/metadata"
	"github.com/llehouerou/aotw/internal/query"
)

// options holds parsed command line flags.
type options struct {
	source  string
	search  string
	params  map[string]string
	values  string
	decades bool
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("picks: ")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(errmsg.Format(errmsg.OpConfigLoad, err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if code := run(ctx, os.Stdout, cfg, os.Args[1:]); code != 0 {
		stop()
		os.Exit(code)
	}
}

func run(ctx context.Context, out io.Writer, cfg *config.Config, args []string) int {
	opts, err := parseFlags(args, cfg)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		log.Print(err)
		return 2
	}

	records, err := album.Load(ctx, opts.source)
	if err != nil {
		log.Print(errmsg.FormatWith(errmsg.OpDatasetLoad, opts.source, err))
		return 1
	}

	switch {
	case opts.values != "":
		field, ok := query.ParseField(opts.values)
		if !ok {
			log.Printf("unknown field %q", opts.values)
			return 2
		}
		for _, v := range metadata.DistinctValues(records, field) {
			fmt.Fprintln(out, v)
		}
	case opts.decades:
		for _, d := range metadata.DistinctDecades(records) {
			fmt.Fprintln(out, d)
		}
	default:
		q := query.FromParams(opts.search, opts.params)
		q.Locale = cfg.Language()
		printBuckets(out, query.Arrange(records, q))
	}
	return 0
}

func parseFlags(args []string, cfg *config.Config) (options, error) {
	flagSet := flag.NewFlagSet("picks", flag.ContinueOnError)

	source := flagSet.String("source", cfg.DataSource, "Dataset path or http(s) URL")
	search := flagSet.String("search", "", "Match artist or album (case-insensitive substring)")
	year := flagSet.String("year", "", "Filter by release year")
	artist := flagSet.String("artist", "", "Filter by artist")
	picker := flagSet.String("picker", "", "Filter by picker")
	decade := flagSet.String("decade", "", "Filter by release decade, e.g. 1990")
	sortBy := flagSet.String("sort", cfg.Defaults.SortBy, "Sort by pick_number, artist, album or year")
	sortDir := flagSet.String("dir", cfg.Defaults.SortDir, "Sort direction: asc or desc")
	groupBy := flagSet.String("group", cfg.Defaults.GroupBy, "Group by: none or pick_year")
	values := flagSet.String("values", "", "Print the distinct values of a field instead of picks")
	decades := flagSet.Bool("decades", false, "Print the distinct release decades instead of picks")

	if err := flagSet.Parse(args); err != nil {
		return options{}, err
	}
	if flagSet.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected argument %q", flagSet.Arg(0))
	}

	return options{
		source: *source,
		search: *search,
		params: map[string]string{
			"year":    *year,
			"artist":  *artist,
			"picker":  *picker,
			"decade":  *decade,
			"sortBy":  *sortBy,
			"sortDir": *sortDir,
			"groupBy": *groupBy,
		},
		values:  *values,
		decades: *decades,
	}, nil
}

// printBuckets writes one line per pick, preceded by a header for each
// bucket when the result is grouped.
func printBuckets(out io.Writer, buckets []query.Bucket) {
	for i := range buckets {
		if buckets[i].Key != "" {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "== %s ==\n", buckets[i].Key)
		}
		for j := range buckets[i].Records {
			fmt.Fprintln(out, formatRecord(&buckets[i].Records[j]))
		}
	}
}

// formatRecord renders "#12  Air — Moon Safari (1998)".
func formatRecord(r *album.Record) string {
	pick := "#?"
	if r.PickNumber > 0 {
		pick = "#" + strconv.Itoa(r.PickNumber)
	}
	line := pick + "  " + r.Artist + " — " + r.Title
	if r.HasYear() {
		line += " (" + strconv.Itoa(r.Year) + ")"
	}
	return line
}
