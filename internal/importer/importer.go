package importer

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/dynastyhq/gridiron/internal/stats"
	"github.com/dynastyhq/gridiron/internal/store"
	"github.com/dynastyhq/gridiron/internal/store/repository"
)

// Importer persists dynasty documents, linking every stat line to a roster
// player ID at ingestion time so downstream aggregation never has to match by
// display name again
type Importer struct {
	dynastyRepo *repository.DynastyRepository
	playerRepo  *repository.PlayerRepository
	gameRepo    *repository.GameRepository
	manualRepo  *repository.ManualStatsRepository
}

// NewImporter creates a new importer
func NewImporter(db *store.Database) *Importer {
	return &Importer{
		dynastyRepo: repository.NewDynastyRepository(db),
		playerRepo:  repository.NewPlayerRepository(db),
		gameRepo:    repository.NewGameRepository(db),
		manualRepo:  repository.NewManualStatsRepository(db),
	}
}

// Import writes one dynasty document to the store. IDs missing from the
// document are generated; stat lines are linked to player IDs by normalized
// name. Lines naming nobody on the roster are kept but left unlinked.
func (imp *Importer) Import(ctx context.Context, doc *Document) (*Summary, error) {
	if doc.Dynasty.DynastyID == "" {
		doc.Dynasty.DynastyID = uuid.NewString()
	}
	if doc.Dynasty.Name == "" {
		return nil, fmt.Errorf("dynasty name is required")
	}

	if err := imp.dynastyRepo.Upsert(ctx, &doc.Dynasty); err != nil {
		return nil, err
	}

	index := buildNameIndex(doc.Players)

	summary := &Summary{DynastyID: doc.Dynasty.DynastyID}

	for i := range doc.Players {
		p := &doc.Players[i]
		p.DynastyID = doc.Dynasty.DynastyID
		if err := imp.playerRepo.Upsert(ctx, p); err != nil {
			return nil, fmt.Errorf("importing player %q: %w", p.Name, err)
		}
		summary.Players++
	}

	for i := range doc.Games {
		g := &doc.Games[i]
		if g.GameID == "" {
			g.GameID = uuid.NewString()
		}
		g.DynastyID = doc.Dynasty.DynastyID
		linked, unmatched := linkBoxScore(g.BoxScore, index)
		summary.LinkedLines += linked
		summary.UnmatchedLines += unmatched
		if err := imp.gameRepo.Upsert(ctx, g); err != nil {
			return nil, fmt.Errorf("importing game %s: %w", g.GameID, err)
		}
		summary.Games++
	}

	for i := range doc.ManualStats {
		s := &doc.ManualStats[i]
		if s.ID == "" {
			s.ID = uuid.NewString()
		}
		s.DynastyID = doc.Dynasty.DynastyID
		linked, unmatched := linkManualLines(s.Entries, index)
		summary.LinkedLines += linked
		summary.UnmatchedLines += unmatched
		if err := imp.manualRepo.Upsert(ctx, s); err != nil {
			return nil, fmt.Errorf("importing manual stats %d/%s: %w", s.Year, s.Category, err)
		}
		summary.ManualSheets++
	}

	if summary.UnmatchedLines > 0 {
		log.Printf("import %s: %d stat lines named players not on the roster", doc.Dynasty.DynastyID, summary.UnmatchedLines)
	}

	return summary, nil
}

// buildNameIndex maps normalized player names to player IDs, generating an ID
// for any roster entry that lacks one
func buildNameIndex(players []store.Player) map[string]string {
	index := make(map[string]string, len(players))
	for i := range players {
		p := &players[i]
		if p.PlayerID == "" {
			p.PlayerID = uuid.NewString()
		}
		index[stats.NormalizeName(p.Name)] = p.PlayerID
	}
	return index
}

// linkBoxScore stamps player IDs onto every stat line of both sides
func linkBoxScore(box *store.BoxScore, index map[string]string) (linked, unmatched int) {
	if box == nil {
		return 0, 0
	}
	for _, side := range []store.CategoryMap{box.Home, box.Away} {
		for _, lines := range side {
			for i := range lines {
				line := &lines[i]
				if line.PlayerID != "" {
					continue
				}
				if pid, ok := index[stats.NormalizeName(line.PlayerName)]; ok {
					line.PlayerID = pid
					linked++
				} else {
					unmatched++
				}
			}
		}
	}
	return linked, unmatched
}

// linkManualLines stamps player IDs onto manual sheet lines
func linkManualLines(lines []store.ManualStatLine, index map[string]string) (linked, unmatched int) {
	for i := range lines {
		line := &lines[i]
		if line.PlayerID != "" {
			continue
		}
		if pid, ok := index[stats.NormalizeName(line.PlayerName)]; ok {
			line.PlayerID = pid
			linked++
		} else {
			unmatched++
		}
	}
	return linked, unmatched
}
