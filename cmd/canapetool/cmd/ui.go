package cmd

import (
	"errors"
	"fmt"
	"path"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	canape "github.com/roffe/gocanape"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
)

func onOff(b bool, on, off string) string {
	if b {
		return green(on)
	}
	return red(off)
}

func yesNo(label string) (bool, error) {
	prompt := promptui.Select{
		Label:    label + " [Yes/No]",
		HideHelp: true,
		Items:    []string{"Yes", "No"},
	}
	_, result, err := prompt.Run()
	if err != nil {
		return false, err
	}
	return result == "Yes", nil
}

// calibrationObject looks up name on m. When a pattern matches several
// objects the user picks one.
func calibrationObject(m *canape.Module, name string) (canape.CalibrationObject, error) {
	obj, err := m.CalibrationObject(name)
	if !errors.Is(err, canape.ErrAmbiguousObject) {
		return obj, err
	}
	names, lerr := m.DatabaseObjects()
	if lerr != nil {
		return nil, lerr
	}
	var matches []string
	for _, n := range names {
		if ok, _ := path.Match(name, n); ok {
			matches = append(matches, n)
		}
	}
	prompt := promptui.Select{
		Label: fmt.Sprintf("%q matches %d objects", name, len(matches)),
		Items: matches,
		Size:  15,
		Searcher: func(input string, index int) bool {
			return strings.Contains(strings.ToLower(matches[index]), strings.ToLower(input))
		},
	}
	_, picked, err := prompt.Run()
	if err != nil {
		return nil, err
	}
	return m.CalibrationObject(picked)
}

func parseFloats(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", p)
		}
		out = append(out, f)
	}
	return out, nil
}

// parseMatrix reads rows separated by ';', e.g. "1,2;3,4".
func parseMatrix(s string) ([][]float64, error) {
	var out [][]float64
	for _, row := range strings.Split(s, ";") {
		values, err := parseFloats(row)
		if err != nil {
			return nil, err
		}
		out = append(out, values)
	}
	return out, nil
}

func formatFloats(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, ", ")
}
