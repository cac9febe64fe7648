package draglist

import (
	"testing"
	"time"
)

// --- Axis ---

func TestAxisComponent(t *testing.T) {
	tests := []struct {
		axis Axis
		x, y float64
		want float64
	}{
		{Horizontal, 3, 7, 3},
		{Vertical, 3, 7, 7},
	}
	for _, tt := range tests {
		if got := tt.axis.component(tt.x, tt.y); got != tt.want {
			t.Errorf("%v.component(%v, %v) = %v, want %v", tt.axis, tt.x, tt.y, got, tt.want)
		}
	}
}

func TestAxisVector(t *testing.T) {
	if x, y := Horizontal.vector(5); x != 5 || y != 0 {
		t.Errorf("Horizontal.vector(5) = (%v, %v), want (5, 0)", x, y)
	}
	if x, y := Vertical.vector(5); x != 0 || y != 5 {
		t.Errorf("Vertical.vector(5) = (%v, %v), want (0, 5)", x, y)
	}
}

func TestAxisLeadAndExtent(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 30, Height: 40}
	tests := []struct {
		axis               Axis
		wantLead, wantSize float64
	}{
		{Horizontal, 10, 30},
		{Vertical, 20, 40},
	}
	for _, tt := range tests {
		if got := tt.axis.lead(r); got != tt.wantLead {
			t.Errorf("%v.lead = %v, want %v", tt.axis, got, tt.wantLead)
		}
		if got := tt.axis.extent(r); got != tt.wantSize {
			t.Errorf("%v.extent = %v, want %v", tt.axis, got, tt.wantSize)
		}
	}
}

func TestAxisStringInvalidPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	_ = Axis(9).String()
}

// --- Rect ---

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 30, Height: 40}
	tests := []struct {
		x, y float64
		want bool
	}{
		{25, 40, true},
		{10, 20, true}, // edges inclusive
		{40, 60, true},
		{9, 40, false},
		{25, 61, false},
		{41, 40, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

// --- Enum names ---

func TestEnumStrings(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{Horizontal.String(), "Horizontal"},
		{Vertical.String(), "Vertical"},
		{StateIdle.String(), "StateIdle"},
		{StateDragging.String(), "StateDragging"},
		{StateSettling.String(), "StateSettling"},
		{NotDismissed.String(), "NotDismissed"},
		{DismissLeft.String(), "DismissLeft"},
		{DismissRight.String(), "DismissRight"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("String() = %q, want %q", tt.got, tt.want)
		}
	}
}

// --- Config defaults ---

func TestConfigWithDefaults(t *testing.T) {
	c := Config{}.withDefaults()
	if c.MoveDuration != 150*time.Millisecond {
		t.Errorf("MoveDuration = %v, want 150ms", c.MoveDuration)
	}
	if c.LongPressDuration != 500*time.Millisecond {
		t.Errorf("LongPressDuration = %v, want 500ms", c.LongPressDuration)
	}
	if c.SlopRadius != 8 {
		t.Errorf("SlopRadius = %v, want 8", c.SlopRadius)
	}
	if c.ScrollAmount != 50 {
		t.Errorf("ScrollAmount = %v, want 50", c.ScrollAmount)
	}
	if c.Now == nil {
		t.Error("Now should default to the real clock")
	}
}

func TestConfigExplicitValuesKept(t *testing.T) {
	c := Config{
		MoveDuration:      20 * time.Millisecond,
		LongPressDuration: time.Second,
		SlopRadius:        2,
		ScrollAmount:      12,
	}.withDefaults()
	if c.MoveDuration != 20*time.Millisecond || c.LongPressDuration != time.Second ||
		c.SlopRadius != 2 || c.ScrollAmount != 12 {
		t.Errorf("explicit values overridden: %+v", c)
	}
}

func TestSwipeConfigWithDefaults(t *testing.T) {
	c := SwipeConfig{}.withDefaults()
	if c.DistanceFraction != 0.5 {
		t.Errorf("DistanceFraction = %v, want 0.5", c.DistanceFraction)
	}
	if c.MinFlingVelocity != 400 || c.MaxFlingVelocity != 8000 {
		t.Errorf("fling band = [%v, %v], want [400, 8000]", c.MinFlingVelocity, c.MaxFlingVelocity)
	}
	if c.SlopRadius != 8 {
		t.Errorf("SlopRadius = %v, want 8", c.SlopRadius)
	}
	if c.MoveDuration != 150*time.Millisecond {
		t.Errorf("MoveDuration = %v, want 150ms", c.MoveDuration)
	}
}
