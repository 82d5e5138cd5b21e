package position

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"tradequotes/internal/adapters"
	"tradequotes/internal/domain"
)

const numWorkers = 5
const perPairTimeout = 5 * time.Second

// ApplyTrailingStops raises the expected sale price of every stored position
// whose pair has a mark, following the mark down by trail (a fraction).
// It returns the number of positions that moved.
func ApplyTrailingStops(ctx context.Context, execID string, positionRepo adapters.PositionRepository, markRepo adapters.MarkRepository, pairs *Pairs, trail decimal.Decimal) (int, error) {
	// STEP 1: loading every stored position
	recs, err := positionRepo.ListAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list positions: %w", err)
	}
	if len(recs) == 0 {
		logrus.Infof("No positions to trail this time; execID: %s", execID)
		return 0, nil
	}

	// STEP 2: grouping by pair, so each mark is read once
	byPair := groupByPair(recs)
	logrus.Infof("%d positions on %d pairs found, start trailing; execID: %s", len(recs), len(byPair), execID)

	// STEP 3: evaluating pairs in parallel
	updates := processInParallel(ctx, markRepo, pairs, byPair, trail)
	if len(updates) == 0 {
		return 0, nil
	}

	// STEP 4: persisting raised targets in one batch
	if err = positionRepo.UpdateExpectedSalePrices(ctx, updates); err != nil {
		return 0, fmt.Errorf("failed to update expected sale prices: %w", err)
	}
	logrus.Infof("%d expected sale prices raised; execID: %s", len(updates), execID)
	return len(updates), nil
}

func groupByPair(recs []domain.PositionRecord) map[string][]domain.PositionRecord {
	byPair := make(map[string][]domain.PositionRecord)
	for _, rec := range recs {
		byPair[rec.Pair] = append(byPair[rec.Pair], rec)
	}
	return byPair
}

func processInParallel(ctx context.Context, markRepo adapters.MarkRepository, pairs *Pairs, byPair map[string][]domain.PositionRecord, trail decimal.Decimal) []domain.SalePriceUpdate {
	workQueue := make(chan string, len(byPair))
	for pair := range byPair {
		workQueue <- pair
	}
	close(workQueue)

	updatesCh := make(chan domain.SalePriceUpdate, countRecords(byPair))

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			runWorker(ctx, workerID, workQueue, markRepo, pairs, byPair, trail, updatesCh)
		}(i)
	}

	wg.Wait()
	close(updatesCh)

	updates := make([]domain.SalePriceUpdate, 0, len(updatesCh))
	for upd := range updatesCh {
		updates = append(updates, upd)
	}
	return updates
}

func countRecords(byPair map[string][]domain.PositionRecord) int {
	n := 0
	for _, recs := range byPair {
		n += len(recs)
	}
	return n
}

func runWorker(ctx context.Context, workerID int, workQueue <-chan string, markRepo adapters.MarkRepository, pairs *Pairs, byPair map[string][]domain.PositionRecord, trail decimal.Decimal, updatesCh chan<- domain.SalePriceUpdate) {
	for {
		select {
		case <-ctx.Done():
			return
		case pair, ok := <-workQueue:
			if !ok {
				return
			}
			processPair(ctx, workerID, pair, markRepo, pairs, byPair[pair], trail, updatesCh)
		}
	}
}

// processPair reads the pair's mark and pushes every raised target to updatesCh.
func processPair(ctx context.Context, workerID int, spec string, markRepo adapters.MarkRepository, pairs *Pairs, recs []domain.PositionRecord, trail decimal.Decimal, updatesCh chan<- domain.SalePriceUpdate) {
	reqCtx, cancel := context.WithTimeout(ctx, perPairTimeout)
	defer cancel()

	mark, err := markRepo.Get(reqCtx, spec)
	if err != nil {
		if !errors.Is(err, domain.ErrMarkNotFound) {
			logrus.Warnf("Pair '%s' wasn't processed by worker %d as reading its mark failed: %s", spec, workerID, err)
		}
		return
	}
	pair, err := pairs.Resolve(spec)
	if err != nil {
		logrus.Warnf("Pair '%s' wasn't processed by worker %d: %s", spec, workerID, err)
		return
	}
	current := pair.CreatePrice(mark.Price)

	for _, rec := range recs {
		pos, err := FromRecord(pair, rec)
		if err != nil {
			logrus.WithError(err).WithField("position_id", rec.ID).Warn("Skipping unreadable position")
			continue
		}
		moved, raised, err := pos.ApplyTrailingStop(current, trail)
		if err != nil {
			logrus.WithError(err).WithField("position_id", rec.ID).Warn("Trailing stop failed")
			continue
		}
		if raised {
			updatesCh <- domain.SalePriceUpdate{ID: pos.ID, ExpectedSalePrice: moved.ExpectedSalePrice.Value()}
		}
	}
}
