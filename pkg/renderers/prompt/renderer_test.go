package prompt

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formatter/pkg/format"
	"github.com/goliatone/go-formatter/pkg/render"
	"github.com/goliatone/go-formatter/pkg/testsupport"
)

type stubDriver struct {
	inputs       []string
	selectIdx    []int
	confirm      []bool
	inputErr     error
	infoMessages []string
	rejected     []string
	messages     []string
	inputPos     int
	selectPos    int
	confirmPos   int
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	if s.inputErr != nil {
		return "", s.inputErr
	}
	s.messages = append(s.messages, cfg.Message)
	for s.inputPos < len(s.inputs) {
		val := s.inputs[s.inputPos]
		s.inputPos++
		if cfg.Validator != nil {
			if err := cfg.Validator(val); err != nil {
				s.rejected = append(s.rejected, err.Error())
				continue
			}
		}
		return val, nil
	}
	return "", errors.New("no input scripted")
}

func (s *stubDriver) Confirm(_ context.Context, _ ConfirmConfig) (bool, error) {
	if s.confirmPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, _ SelectConfig) (int, error) {
	if s.selectPos >= len(s.selectIdx) {
		return -1, errors.New("no select scripted")
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

func presetResolver(_ context.Context, name string) (*format.Formatter, error) {
	return format.New(name)
}

func TestRenderer_SelectsAndFormats(t *testing.T) {
	driver := &stubDriver{selectIdx: []int{3}, inputs: []string{"501234567"}}
	r := New(WithPromptDriver(driver), WithTheme(Theme{InfoPrefix: "> "}))
	if r.Name() != "prompt" {
		t.Fatalf("name = %q", r.Name())
	}

	entries, err := r.Run(testsupport.Context(), render.Session{
		Names:   format.PresetNames(),
		Resolve: presetResolver,
		Once:    true,
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	want := []render.Entry{{
		Name:        format.TypePhone,
		Raw:         "501234567",
		Text:        "+380 (50) 123-45-67",
		Unformatted: "+380 (50) 123-45-67",
		Complete:    true,
	}}
	if diff := cmp.Diff(want, entries); diff != "" {
		t.Fatalf("entries mismatch (-want +got):\n%s", diff)
	}
	if len(driver.infoMessages) != 1 || !strings.HasPrefix(driver.infoMessages[0], "> ") {
		t.Fatalf("info messages = %v", driver.infoMessages)
	}
	if diff := cmp.Diff([]string{"phone (pattern +380 (99) 999-99-99)"}, driver.messages); diff != "" {
		t.Fatalf("prompt messages mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderer_RepromptsInvalidValues(t *testing.T) {
	driver := &stubDriver{inputs: []string{"12ab", "0042", "1234567"}, confirm: []bool{true, false}}
	r := New(WithPromptDriver(driver))

	entries, err := r.Run(testsupport.Context(), render.Session{
		Name: format.TypeNumber,
		Resolve: func(_ context.Context, name string) (*format.Formatter, error) {
			return format.New(name, format.WithMaxLength(8))
		},
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	var texts []string
	for _, e := range entries {
		texts = append(texts, e.Text)
	}
	if diff := cmp.Diff([]string{"0042", "1234567"}, texts); diff != "" {
		t.Fatalf("texts mismatch (-want +got):\n%s", diff)
	}
	if len(driver.rejected) != 1 || !strings.Contains(driver.rejected[0], `"12ab"`) {
		t.Fatalf("rejections = %v", driver.rejected)
	}
}

func TestRenderer_Errors(t *testing.T) {
	ctx := testsupport.Context()

	r := New(WithPromptDriver(&stubDriver{inputErr: ErrAborted}))
	_, err := r.Run(ctx, render.Session{Name: format.TypeAmount, Resolve: presetResolver})
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}

	if _, err := r.Run(ctx, render.Session{Name: format.TypeAmount}); err == nil {
		t.Fatalf("expected session validation error")
	}

	r = New(WithPromptDriver(&stubDriver{selectIdx: []int{7}}))
	if _, err := r.Run(ctx, render.Session{Names: []string{"a"}, Resolve: presetResolver}); err == nil {
		t.Fatalf("expected out of range error")
	}

	r = New(WithPromptDriver(&stubDriver{}))
	_, err = r.Run(ctx, render.Session{
		Name: "missing",
		Resolve: func(context.Context, string) (*format.Formatter, error) {
			return nil, fmt.Errorf("nope")
		},
	})
	if err == nil || !strings.Contains(err.Error(), `"missing"`) {
		t.Fatalf("expected resolver error, got %v", err)
	}
}

func TestEvaluate(t *testing.T) {
	ctx := testsupport.Context()
	cases := []struct {
		typ  string
		raw  string
		want render.Entry
	}{
		{typ: format.TypeAmount, raw: "1234567", want: render.Entry{Name: format.TypeAmount, Raw: "1234567", Text: "1 234 567.00", Unformatted: "1234567.00", Complete: true}},
		{typ: format.TypeAmount, raw: "12a", want: render.Entry{Name: format.TypeAmount, Raw: "12a"}},
		{typ: format.TypePhone, raw: "5012", want: render.Entry{Name: format.TypePhone, Raw: "5012"}},
		{typ: format.TypeOneline, raw: " a\nb ", want: render.Entry{Name: format.TypeOneline, Raw: " a\nb ", Text: "ab", Unformatted: "ab", Complete: true}},
	}
	for _, tc := range cases {
		t.Run(tc.typ, func(t *testing.T) {
			f := testsupport.MustFormatter(t, tc.typ)
			got, err := Evaluate(ctx, tc.typ, f, tc.raw)
			if err != nil {
				t.Fatalf("evaluate: %v", err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("entry mismatch (-want +got):\n%s", diff)
			}
		})
	}
	if _, err := Evaluate(ctx, "x", nil, ""); err == nil {
		t.Fatalf("expected nil formatter error")
	}
}

func TestDescribe(t *testing.T) {
	cases := map[string]string{
		format.TypePhone:   "pattern +380 (99) 999-99-99",
		format.TypeAmount:  "amount, 2 decimals",
		format.TypeOneline: "filtered, up to 160 characters",
		"custom":           "free text",
	}
	for typ, want := range cases {
		if got := Describe(testsupport.MustFormatter(t, typ)); got != want {
			t.Errorf("Describe(%s) = %q, want %q", typ, got, want)
		}
	}
}

func TestTranslateSurveyErr(t *testing.T) {
	if !errors.Is(translateSurveyErr(terminal.InterruptErr), ErrAborted) {
		t.Fatalf("interrupt should map to ErrAborted")
	}
	other := errors.New("boom")
	if translateSurveyErr(other) != other {
		t.Fatalf("other errors should pass through")
	}
}
