package validation

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestConfigValidator_AllPass(t *testing.T) {
	cv := NewConfigValidator("TestConfig").
		Required("Name", "demo").
		RequiredTime("Start", time.Now()).
		PositiveDuration("Interval", 15*time.Minute).
		PositiveFloat("BaseDemand", 100).
		NonNegativeFloat("PumpRate", 0).
		RangeFloat("Severity", 0.3, 0, 1).
		OneOf("Status", "on", []string{"on", "off"})

	if cv.HasErrors() {
		t.Errorf("unexpected errors: %v", cv.Errors())
	}
	if err := cv.Validate(); err != nil {
		t.Errorf("Validate returned %v, want nil", err)
	}
}

func TestConfigValidator_CollectsAllErrors(t *testing.T) {
	cv := NewConfigValidator("TestConfig").
		Required("Name", "").
		RequiredTime("Start", time.Time{}).
		PositiveDuration("Interval", 0).
		PositiveFloat("BaseDemand", -1).
		NonNegativeFloat("PumpRate", -1).
		RangeFloat("Severity", 1.5, 0, 1).
		OneOf("Status", "maybe", []string{"on", "off"})

	if got := len(cv.Errors()); got != 7 {
		t.Fatalf("error count = %d, want 7", got)
	}

	err := cv.Validate()
	if err == nil {
		t.Fatal("Validate returned nil with errors collected")
	}
	for _, fragment := range []string{"TestConfig.Name", "TestConfig.Interval", "TestConfig.Severity", "TestConfig.Status"} {
		if !strings.Contains(err.Error(), fragment) {
			t.Errorf("joined error does not mention %s", fragment)
		}
	}
}

func TestConfigValidator_Custom(t *testing.T) {
	sentinel := errors.New("boom")
	err := NewConfigValidator("TestConfig").
		Custom("Field", func() error { return sentinel }).
		Validate()

	if !errors.Is(err, sentinel) {
		t.Errorf("custom error not wrapped: %v", err)
	}
}

func TestConfigValidator_When(t *testing.T) {
	cv := NewConfigValidator("TestConfig").
		When(false, func(cv *ConfigValidator) { cv.Required("Skipped", "") }).
		When(true, func(cv *ConfigValidator) { cv.Required("Applied", "") })

	if got := len(cv.Errors()); got != 1 {
		t.Fatalf("error count = %d, want 1", got)
	}
	if !strings.Contains(cv.Errors()[0].Error(), "Applied") {
		t.Errorf("wrong conditional branch ran: %v", cv.Errors()[0])
	}
}

func TestDefaultOrDuration(t *testing.T) {
	if got := DefaultOrDuration(0, time.Minute); got != time.Minute {
		t.Errorf("zero value = %v, want default", got)
	}
	if got := DefaultOrDuration(-time.Second, time.Minute); got != time.Minute {
		t.Errorf("negative value = %v, want default", got)
	}
	if got := DefaultOrDuration(time.Hour, time.Minute); got != time.Hour {
		t.Errorf("set value = %v, want passthrough", got)
	}
}
