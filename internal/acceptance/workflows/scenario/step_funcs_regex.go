package scenario

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/cucumber/godog"
)

// hasRegexMatches matches an expression with named sub-expressions
// against an output stream and compares each match against a table row.
// The table header must name every sub-expression.
func hasRegexMatches(ctx context.Context, outputName, expression string, table *godog.Table) error {
	ex, err := regexp.Compile(expression)
	if err != nil {
		return err
	}

	buf, err := output(ctx, outputName)
	if err != nil {
		return err
	}

	columnIndexes, err := tableColumnsForSubexpressions(table, ex)
	if err != nil {
		return err
	}

	allSubMatches := ex.FindAllSubmatch(buf.Bytes(), -1)

	expLen := len(table.Rows) - 1
	gotLen := len(allSubMatches)
	if expLen != gotLen {
		return fmt.Errorf("expected %d matches but got %d", expLen, gotLen)
	}

	var errBuilder strings.Builder
	subExpNames := ex.SubexpNames()
	for rowIndex, gotMatch := range allSubMatches {
		expectedRow := table.Rows[rowIndex+1]

		for matchIndex, matchBytes := range gotMatch[1:] {
			gotString := string(matchBytes)
			matchName := subExpNames[matchIndex+1]

			expString := expectedRow.Cells[columnIndexes[matchName]].Value
			if unQuoted, err := strconv.Unquote(expString); err == nil {
				expString = unQuoted
			}

			if gotString != expString {
				errBuilder.WriteString(fmt.Sprintf("expected match %d submatch named %s to equal %q but got %q\n", rowIndex, matchName, expString, gotString))
			}
		}
	}

	if l := errBuilder.Len(); l > 0 {
		return errors.New(errBuilder.String()[:l-1])
	}

	return nil
}

// tableColumnsForSubexpressions maps each named sub-expression to a
// unique header column.
func tableColumnsForSubexpressions(table *godog.Table, exp *regexp.Regexp) (map[string]int, error) {
	columnIndexes := make(map[string]int)
	if len(table.Rows) > 0 {
		for index, cell := range table.Rows[0].Cells {
			foundIndex, found := columnIndexes[cell.Value]
			if found {
				return nil, fmt.Errorf("column name %q is not unique in the table, column %d has the same name", cell.Value, foundIndex)
			}
			columnIndexes[cell.Value] = index
		}
	}

	var namesNotFound []string
	for _, name := range exp.SubexpNames() {
		if name == "" {
			continue
		}
		if _, found := columnIndexes[name]; !found {
			namesNotFound = append(namesNotFound, name)
		}
	}
	if len(namesNotFound) > 0 {
		return nil, fmt.Errorf("expected first row to contain the names of sub expressions: missing %v", namesNotFound)
	}

	return columnIndexes, nil
}
