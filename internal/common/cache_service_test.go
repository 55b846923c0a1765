package common

import (
	"context"
	"reflect"
	"testing"
	"time"
)

func TestAsStrings(t *testing.T) {
	tests := []struct {
		name   string
		in     interface{}
		want   []string
		wantOK bool
	}{
		{"string slice", []string{"Goa", "Delhi"}, []string{"Goa", "Delhi"}, true},
		{"decoded json", []interface{}{"Goa", "Delhi"}, []string{"Goa", "Delhi"}, true},
		{"empty decoded json", []interface{}{}, []string{}, true},
		{"mixed", []interface{}{"Goa", 1}, nil, false},
		{"wrong type", "Goa", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := AsStrings(tt.in)
			if ok != tt.wantOK {
				t.Fatalf("Expected ok=%v, got %v", tt.wantOK, ok)
			}
			if ok && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestCacheService_SetGetDelete(t *testing.T) {
	cache := NewCacheService(time.Minute, time.Minute)

	cache.Set("k", []string{"Goa"}, time.Minute)
	v, ok := cache.Get("k")
	if !ok {
		t.Fatal("Expected cached value")
	}
	if list, _ := AsStrings(v); len(list) != 1 || list[0] != "Goa" {
		t.Errorf("Expected [Goa], got %v", v)
	}

	cache.Delete("k")
	if _, ok := cache.Get("k"); ok {
		t.Error("Expected value deleted")
	}

	cache.Set("short", 1, time.Millisecond)
	time.Sleep(5 * time.Millisecond)
	if _, ok := cache.Get("short"); ok {
		t.Error("Expected value expired")
	}

	if err := cache.Ping(context.Background()); err != nil {
		t.Errorf("Expected in-memory ping to succeed, got %v", err)
	}
}

func TestLockedRand_Bounds(t *testing.T) {
	rnd := NewLockedRand(42)
	for i := 0; i < 1000; i++ {
		if v := rnd.IntN(5); v < 0 || v >= 5 {
			t.Fatalf("IntN out of range: %d", v)
		}
		if f := rnd.Float64(); f < 0 || f >= 1 {
			t.Fatalf("Float64 out of range: %v", f)
		}
	}
}
