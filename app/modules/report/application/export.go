package reportservice

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const (
	playersSheet    = "Players"
	presidentsSheet = "Presidents"
)

var playerHeaders = []any{
	"Team", "Player", "Role", "Base vote", "Goals", "Double goals",
	"Penalties scored", "Penalties missed", "Assists", "Yellow cards", "Red cards",
	"Shootout scored", "Shootout missed", "Own goals", "Clean sheet",
	"Goals conceded", "Shootout conceded", "Minutes", "Final score",
}

var presidentHeaders = []any{"Team", "President", "Penalty", "Final score"}

// BuildMatchdayWorkbook renders the sheet as an XLSX file with one tab for
// players and one for presidents.
func BuildMatchdayWorkbook(sheet MatchdaySheet) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", playersSheet); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}
	if _, err := f.NewSheet(presidentsSheet); err != nil {
		return nil, fmt.Errorf("failed to create sheet %q: %w", presidentsSheet, err)
	}

	if err := f.SetSheetRow(playersSheet, "A1", &playerHeaders); err != nil {
		return nil, fmt.Errorf("failed to write player header: %w", err)
	}
	for i, p := range sheet.Players {
		row := []any{
			p.Team, p.Player, p.Role, p.BaseVote, p.Goals, p.GoalsDouble,
			p.PenaltiesScored, p.PenaltiesMissed, p.Assists, p.YellowCards, p.RedCards,
			p.ShootoutScored, p.ShootoutMissed, p.OwnGoals, p.CleanSheet,
			p.GoalsConceded, p.ShootoutConceded, p.MinutesPlayed, p.FinalScore,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(playersSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write player row %d: %w", i, err)
		}
	}

	if err := f.SetSheetRow(presidentsSheet, "A1", &presidentHeaders); err != nil {
		return nil, fmt.Errorf("failed to write president header: %w", err)
	}
	for i, p := range sheet.Presidents {
		row := []any{p.Team, p.President, p.Penalty, p.FinalScore}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(presidentsSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write president row %d: %w", i, err)
		}
	}

	if err := f.SetPanes(playersSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, fmt.Errorf("failed to freeze header: %w", err)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// ExportFileName is the attachment name for a matchday export.
func ExportFileName(matchdayNumber int) string {
	return fmt.Sprintf("matchday-%02d-votes.xlsx", matchdayNumber)
}
