// Package main provides the dicee CLI: analyze a position locally or against a
// running advisor, play out a dealt turn, or verify a catalog of known positions.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"slices"
	"strings"
	"text/tabwriter"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/cory-johannsen/dicee/internal/advisor"
	"github.com/cory-johannsen/dicee/internal/config"
	"github.com/cory-johannsen/dicee/internal/game/category"
	"github.com/cory-johannsen/dicee/internal/game/dice"
	"github.com/cory-johannsen/dicee/internal/game/solver"
	"github.com/cory-johannsen/dicee/internal/gameserver"
	"github.com/cory-johannsen/dicee/internal/observability"
	"github.com/cory-johannsen/dicee/internal/positions"
)

func main() {
	configPath := flag.String("config", "", "path to configuration file; empty uses defaults and DICEE_* environment")
	diceFlag := flag.String("dice", "", `five dice, e.g. "1,2,3,4,6" or "12346"`)
	rolls := flag.Int("rolls", solver.MaxRolls, "rerolls remaining (0-2)")
	categories := flag.String("categories", "all", "open categories: comma-separated ids, or all/upper/lower")
	addr := flag.String("addr", "", "advisor gRPC address; empty solves locally")
	play := flag.Bool("play", false, "deal random dice and follow the advice for one turn")
	seed := flag.Uint64("seed", 0, "seed for -play; 0 uses crypto/rand")
	positionsDir := flag.String("positions", "", "verify every known position in this directory")
	timeout := flag.Duration("timeout", 30*time.Second, "overall deadline")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	logger, err := observability.NewLogger(cfg.Logging, "dicee")
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	analyzer, closeFn, err := newAnalyzer(*addr, cfg, logger)
	if err != nil {
		log.Fatalf("connecting to advisor: %v", err)
	}
	defer closeFn()

	out := os.Stdout
	switch {
	case *positionsDir != "":
		ok, err := verify(ctx, out, analyzer, *positionsDir)
		if err != nil {
			log.Fatalf("verifying positions: %v", err)
		}
		if !ok {
			os.Exit(1)
		}
	case *play:
		set, err := category.ParseSet(*categories)
		if err != nil {
			log.Fatalf("parsing categories: %v", err)
		}
		src := dice.NewCryptoSource()
		if *seed != 0 {
			src = dice.NewSeededSource(*seed)
		}
		steps, err := playTurn(ctx, analyzer, dice.NewLoggedRoller(src, logger), set)
		printTurn(out, steps)
		if err != nil {
			log.Fatalf("playing turn: %v", err)
		}
	default:
		if *diceFlag == "" {
			flag.Usage()
			os.Exit(2)
		}
		req, err := buildRequest(*diceFlag, *rolls, *categories)
		if err != nil {
			log.Fatalf("%v", err)
		}
		resp, err := analyzer.Analyze(ctx, req)
		if err != nil {
			log.Fatalf("analyzing: %v", err)
		}
		printResponse(out, resp)
	}
}

// newAnalyzer returns a local solver, or a gRPC client when addr is set.
func newAnalyzer(addr string, cfg config.Config, logger *zap.Logger) (positions.Analyzer, func(), error) {
	if addr == "" {
		slv := solver.New(
			solver.WithLogger(logger.Named("solver")),
			solver.WithCacheCapacity(cfg.Solver.CacheCapacity),
		)
		return advisor.NewService(slv, logger.Named("advisor")), func() {}, nil
	}
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, nil, fmt.Errorf("dialing %s: %w", addr, err)
	}
	client := gameserver.NewAdvisorClient(conn)
	remote := positions.AnalyzerFunc(func(ctx context.Context, req advisor.Request) (*advisor.Response, error) {
		return client.Analyze(ctx, req)
	})
	return remote, func() { _ = conn.Close() }, nil
}

func buildRequest(diceArg string, rolls int, categories string) (advisor.Request, error) {
	faces, err := dice.Parse(diceArg)
	if err != nil {
		return advisor.Request{}, fmt.Errorf("parsing dice: %w", err)
	}
	set, err := category.ParseSet(categories)
	if err != nil {
		return advisor.Request{}, fmt.Errorf("parsing categories: %w", err)
	}
	return advisor.Request{Dice: faces[:], RollsRemaining: rolls, Available: set.Bits()}, nil
}

func recommendation(resp *advisor.Response) string {
	switch resp.Action {
	case advisor.ActionScore:
		return fmt.Sprintf("Score %s for %d", resp.CategoryName, *resp.CategoryScore)
	case advisor.ActionReroll:
		return resp.KeepDescription
	default:
		return "No open category"
	}
}

func printResponse(w io.Writer, resp *advisor.Response) {
	fmt.Fprintf(w, "%s (expected value %.4f)\n\n", recommendation(resp), resp.ExpectedValue)
	if len(resp.Categories) == 0 {
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "category\tnow\texpected\t")
	for _, c := range resp.Categories {
		now := fmt.Sprint(c.ImmediateScore)
		if !c.Valid {
			now = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%.4f\t\n", c.Name, now, c.ExpectedValue)
	}
	_ = tw.Flush()
}

func printTurn(w io.Writer, steps []turnStep) {
	for _, s := range steps {
		fmt.Fprintf(w, "%v  rolls left %d: %s\n", s.Dice.Dice(), s.Rolls, recommendation(s.Resp))
	}
	if n := len(steps); n > 0 && steps[n-1].Resp.Action == advisor.ActionScore {
		last := steps[n-1].Resp
		fmt.Fprintf(w, "scored %d in %s (turn expected value was %.4f)\n",
			*last.CategoryScore, last.CategoryName, steps[0].Resp.ExpectedValue)
	}
}

// verify reports whether every position in dir matched its expectation.
func verify(ctx context.Context, w io.Writer, a positions.Analyzer, dir string) (bool, error) {
	ps, err := positions.LoadDir(dir)
	if err != nil {
		return false, err
	}
	mismatches, err := positions.Verify(ctx, a, ps)
	if err != nil {
		return false, err
	}
	for _, m := range mismatches {
		fmt.Fprintln(w, m.String())
	}
	failed := make(map[string]bool)
	for _, m := range mismatches {
		failed[m.PositionID] = true
	}
	fmt.Fprintf(w, "%d positions, %d failed%s\n", len(ps), len(failed), failedList(failed))
	return len(mismatches) == 0, nil
}

func failedList(failed map[string]bool) string {
	if len(failed) == 0 {
		return ""
	}
	ids := make([]string, 0, len(failed))
	for id := range failed {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ": " + strings.Join(ids, ", ")
}
