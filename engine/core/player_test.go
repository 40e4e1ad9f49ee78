package core

import "testing"

func TestNewPlayer_Slots(t *testing.T) {
	p1 := NewPlayer(0, 800, 600)
	p2 := NewPlayer(1, 800, 600)
	if !p1.Active || p2.Active {
		t.Fatalf("active = %v/%v, want true/false", p1.Active, p2.Active)
	}
	if p1.X != 100 || p1.Y != 300 {
		t.Errorf("p1 at (%v, %v), want (100, 300)", p1.X, p1.Y)
	}
	if p2.X != 50 || p2.Y != 360 {
		t.Errorf("p2 at (%v, %v), want (50, 360)", p2.X, p2.Y)
	}
	if p1.Health != PlayerMaxHealth || p1.W != PlayerWidth || p1.H != PlayerHeight {
		t.Errorf("p1 = %+v", p1)
	}
}

func TestPlayer_DamageAndHeal(t *testing.T) {
	p := NewPlayer(0, 800, 600)
	p.Damage(5)
	if p.Health != 195 {
		t.Fatalf("Health = %d, want 195", p.Health)
	}
	p.Heal(50)
	if p.Health != PlayerMaxHealth {
		t.Errorf("Heal past max: Health = %d, want %d", p.Health, PlayerMaxHealth)
	}
	p.Damage(1000)
	if p.Health != 0 || p.Alive() {
		t.Errorf("Health = %d after overkill, want 0 and dead", p.Health)
	}
	if p.Playing() {
		t.Error("dead player should not be playing")
	}
}

func TestPlayer_Clamp(t *testing.T) {
	p := NewPlayer(0, 800, 600)
	p.X, p.Y = -10, 700
	p.Clamp(800, 600)
	if p.X != 0 || p.Y != 600-PlayerHeight {
		t.Errorf("clamped to (%v, %v), want (0, %v)", p.X, p.Y, 600-PlayerHeight)
	}
	p.X, p.Y = 900, -5
	p.Clamp(800, 600)
	if p.X != 800-PlayerWidth || p.Y != 0 {
		t.Errorf("clamped to (%v, %v), want (%v, 0)", p.X, p.Y, 800-PlayerWidth)
	}
}

func TestPlayer_Muzzle(t *testing.T) {
	p := NewPlayer(0, 800, 600)
	x, y := p.Muzzle()
	if x != p.X+p.W || y != p.Y+p.H/2 {
		t.Errorf("Muzzle = (%v, %v)", x, y)
	}
}
