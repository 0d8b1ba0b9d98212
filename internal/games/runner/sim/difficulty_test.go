package sim

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-runner/internal/config"
)

func newTestDifficulty() *Difficulty {
	return NewDifficulty(config.DefaultRunnerConfig().Difficulty)
}

func TestDifficultyInitialValues(t *testing.T) {
	d := newTestDifficulty()

	if d.Speed() != 240 {
		t.Errorf("Speed() = %v, expected 240", d.Speed())
	}
	if d.SpawnInterval() != 1200 {
		t.Errorf("SpawnInterval() = %v, expected 1200", d.SpawnInterval())
	}
}

func TestDifficultySpeedRamp(t *testing.T) {
	d := newTestDifficulty()

	for i := 0; i < 100; i++ {
		d.Update(0.01, 0)
	}

	if math.Abs(d.Speed()-290) > 1e-9 {
		t.Errorf("Speed() after 1s = %v, expected 290", d.Speed())
	}
}

func TestTargetInterval(t *testing.T) {
	d := newTestDifficulty()

	tests := []struct {
		name         string
		score, speed float64
		expected     float64
	}{
		// Distance floor (320*1.7/240*1000 = 2266.7) beats 2040, clamped to 2210.
		{"start of run", 0, 240, 1300 * 1.7},
		// Below min speed the floor uses 140 px/s.
		{"slow speed floor", 0, 100, 1300 * 1.7},
		// Score target (1200-200*2.2)*1.7 = 1292 vs floor 544/600*1000 = 906.7.
		{"score driven", 200, 600, (1200 - 200*2.2) * 1.7},
		// Score target collapses; floor 544/1000*1000 = 544 clamps up to 646.
		{"lower clamp", 1000, 1000, 380 * 1.7},
		// Score target negative; floor dominates inside the clamp.
		{"distance floor", 1000, 500, 320 * 1.7 / 500 * 1000},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := d.TargetInterval(tc.score, tc.speed); math.Abs(got-tc.expected) > 1e-9 {
				t.Errorf("TargetInterval(%v, %v) = %v, expected %v", tc.score, tc.speed, got, tc.expected)
			}
		})
	}
}

func TestDifficultyUpdateAtStart(t *testing.T) {
	d := newTestDifficulty()
	d.Update(0, 0)

	if math.Abs(d.SpawnInterval()-2210) > 1e-9 {
		t.Errorf("SpawnInterval() at score 0, speed 240 = %v, expected 2210", d.SpawnInterval())
	}
}

func TestDifficultyIntervalStaysClamped(t *testing.T) {
	d := newTestDifficulty()

	for i := 0; i < 100000; i++ {
		score := float64(i) * 1.6
		d.Update(0.016, score)
		if iv := d.SpawnInterval(); iv < 380*1.7-1e-9 || iv > 1300*1.7+1e-9 {
			t.Fatalf("tick %d: interval %v outside [646, 2210]", i, iv)
		}
	}
}

func TestDifficultyReset(t *testing.T) {
	d := newTestDifficulty()
	d.Update(10, 5000)
	d.Reset()

	if d.Speed() != 240 || d.SpawnInterval() != 1200 {
		t.Errorf("after Reset: speed %v interval %v", d.Speed(), d.SpawnInterval())
	}
}
