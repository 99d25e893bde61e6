package layerstore

import (
	"context"
	"errors"
	"testing"
)

func TestSetAllAllAttempted(t *testing.T) {
	ctx := context.Background()
	fp := newFlakyProvider("a.json")
	s := newGuildStore(t, func(o *Options[guild]) { o.Provider = fp })
	defer s.Close(ctx)

	ok := s.SetAll(ctx, []KV[guild]{
		{ID: "a", Value: guild{Members: 1}},
		{ID: "b", Value: guild{Members: 2}},
	})
	if ok {
		t.Fatal("aggregate should be false when one write fails")
	}
	// the failure must not have aborted the remaining writes
	if got, ok := s.Get(ctx, "b"); !ok || got.Members != 2 {
		t.Fatalf("b should still have been written, got %+v, %v", got, ok)
	}
}

func TestDelAllAllAttempted(t *testing.T) {
	ctx := context.Background()
	s := newGuildStore(t, nil)
	defer s.Close(ctx)

	s.Set(ctx, "a", guild{})
	s.Set(ctx, "c", guild{})
	// "b" is absent, so its Del reports false - but a and c still go
	if s.DelAll(ctx, []string{"a", "b", "c"}) {
		t.Fatal("aggregate should be false with an absent id in the batch")
	}
	if s.Has(ctx, "a") || s.Has(ctx, "c") {
		t.Fatal("present entries should all have been deleted")
	}
}

func TestHasAllHasAny(t *testing.T) {
	ctx := context.Background()
	s := newGuildStore(t, nil)
	defer s.Close(ctx)

	s.Set(ctx, "a", guild{})
	s.Set(ctx, "b", guild{})

	if !s.HasAll(ctx, []string{"a", "b"}) {
		t.Fatal("HasAll over present ids should be true")
	}
	if s.HasAll(ctx, []string{"a", "missing"}) {
		t.Fatal("HasAll with an absent id should be false")
	}
	if !s.HasAny(ctx, []string{"missing", "b"}) {
		t.Fatal("HasAny with one present id should be true")
	}
	if s.HasAny(ctx, []string{"missing", "gone"}) {
		t.Fatal("HasAny over absent ids should be false")
	}
}

func TestGetAllPreservesOrder(t *testing.T) {
	ctx := context.Background()
	s := newGuildStore(t, nil)
	defer s.Close(ctx)

	s.Set(ctx, "a", guild{Members: 1})
	s.Set(ctx, "c", guild{Members: 3})

	got := s.GetAll(ctx, []string{"c", "b", "a"})
	if len(got) != 3 {
		t.Fatalf("GetAll returned %d results, want 3", len(got))
	}
	if got[0].ID != "c" || !got[0].OK || got[0].Value.Members != 3 {
		t.Fatalf("result 0 = %+v", got[0])
	}
	if got[1].ID != "b" || got[1].OK {
		t.Fatalf("result 1 = %+v, want absent marker", got[1])
	}
	if got[2].ID != "a" || !got[2].OK || got[2].Value.Members != 1 {
		t.Fatalf("result 2 = %+v", got[2])
	}
}

func TestEnsureExistingWins(t *testing.T) {
	ctx := context.Background()
	s := newGuildStore(t, nil)
	defer s.Close(ctx)

	first := s.Ensure(ctx, "x", guild{Members: 5})
	if first.Members != 5 {
		t.Fatalf("fresh Ensure = %+v, want fallback", first)
	}
	if got, ok := s.Get(ctx, "x"); !ok || got.Members != 5 {
		t.Fatal("Ensure should have persisted the fallback")
	}
	second := s.Ensure(ctx, "x", guild{Members: 99})
	if second.Members != 5 {
		t.Fatalf("second Ensure = %+v, existing value must win", second)
	}
}

func TestExpect(t *testing.T) {
	ctx := context.Background()
	s := newGuildStore(t, nil)
	defer s.Close(ctx)

	s.Set(ctx, "a", guild{Members: 10})

	big := func(v guild, id string, _ Store[guild]) bool { return v.Members >= 10 }
	if !s.Expect(ctx, "a", big) {
		t.Fatal("Expect should pass for a matching entry")
	}
	if s.Expect(ctx, "a", func(v guild, _ string, _ Store[guild]) bool { return v.Members > 10 }) {
		t.Fatal("Expect should fail when the predicate rejects")
	}
	if s.Expect(ctx, "missing", big) {
		t.Fatal("Expect on an absent entry should fail without calling the predicate")
	}

	s.Set(ctx, "b", guild{Members: 12})
	if !s.ExpectAll(ctx, []string{"a", "b"}, big) {
		t.Fatal("ExpectAll should pass")
	}
	s.Set(ctx, "c", guild{Members: 1})
	if s.ExpectAll(ctx, []string{"a", "c"}, big) {
		t.Fatal("ExpectAll should fail")
	}
	if !s.ExpectAny(ctx, []string{"c", "a"}, big) {
		t.Fatal("ExpectAny should pass")
	}
}

func TestActionSkipsAbsent(t *testing.T) {
	ctx := context.Background()
	s := newGuildStore(t, nil)
	defer s.Close(ctx)

	called := false
	err := s.Action(ctx, "missing", func(guild, string, Store[guild]) error {
		called = true
		return nil
	})
	if err != nil || called {
		t.Fatalf("Action on absent entry: err=%v called=%v", err, called)
	}
}

func TestActionAllAbortsOnError(t *testing.T) {
	ctx := context.Background()
	s := newGuildStore(t, nil)
	defer s.Close(ctx)

	s.Set(ctx, "a", guild{})
	s.Set(ctx, "b", guild{})
	s.Set(ctx, "c", guild{})

	boom := errors.New("caller failure")
	var visited []string
	err := s.ActionAll(ctx, []string{"a", "b", "c"}, func(_ guild, id string, _ Store[guild]) error {
		visited = append(visited, id)
		if id == "b" {
			return boom
		}
		return nil
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want the caller's error unchanged", err)
	}
	if len(visited) != 2 || visited[0] != "a" || visited[1] != "b" {
		t.Fatalf("visited = %v, want in-order abort after b", visited)
	}
}

func TestActionIfGated(t *testing.T) {
	ctx := context.Background()
	s := newGuildStore(t, nil)
	defer s.Close(ctx)

	s.Set(ctx, "a", guild{Members: 1})
	called := false
	err := s.ActionIf(ctx, "a",
		func(guild, string, Store[guild]) error { called = true; return nil },
		func(v guild, _ string, _ Store[guild]) bool { return v.Members > 5 },
	)
	if err != nil || called {
		t.Fatalf("gated action should not have run: err=%v called=%v", err, called)
	}
}

func TestModify(t *testing.T) {
	ctx := context.Background()
	s := newGuildStore(t, nil)
	defer s.Close(ctx)

	s.Set(ctx, "a", guild{Members: 1})

	ok, err := s.Modify(ctx, "a", func(v guild, _ string, _ Store[guild]) (guild, error) {
		v.Members++
		return v, nil
	})
	if err != nil || !ok {
		t.Fatalf("Modify = %v, %v", ok, err)
	}
	if got, _ := s.Get(ctx, "a"); got.Members != 2 {
		t.Fatalf("Members = %d, want 2", got.Members)
	}

	// absent: no write, no error
	ok, err = s.Modify(ctx, "missing", func(v guild, _ string, _ Store[guild]) (guild, error) {
		return v, nil
	})
	if ok || err != nil {
		t.Fatalf("Modify of absent entry = %v, %v", ok, err)
	}

	// caller error: forwarded, value untouched
	boom := errors.New("modifier failure")
	ok, err = s.Modify(ctx, "a", func(guild, string, Store[guild]) (guild, error) {
		return guild{}, boom
	})
	if ok || !errors.Is(err, boom) {
		t.Fatalf("Modify with failing fn = %v, %v", ok, err)
	}
	if got, _ := s.Get(ctx, "a"); got.Members != 2 {
		t.Fatal("failed modify must not write")
	}
}

func TestModifyAllIf(t *testing.T) {
	ctx := context.Background()
	s := newGuildStore(t, nil)
	defer s.Close(ctx)

	s.Set(ctx, "a", guild{Members: 1})
	s.Set(ctx, "b", guild{Members: 10})

	bump := func(v guild, _ string, _ Store[guild]) (guild, error) {
		v.Members++
		return v, nil
	}
	small := func(v guild, _ string, _ Store[guild]) bool { return v.Members < 5 }

	// b fails the predicate, so the aggregate is false but a is modified
	ok, err := s.ModifyAllIf(ctx, []string{"a", "b"}, bump, small)
	if err != nil {
		t.Fatalf("ModifyAllIf: %v", err)
	}
	if ok {
		t.Fatal("aggregate should be false when the predicate gates an id out")
	}
	if got, _ := s.Get(ctx, "a"); got.Members != 2 {
		t.Fatalf("a.Members = %d, want 2", got.Members)
	}
	if got, _ := s.Get(ctx, "b"); got.Members != 10 {
		t.Fatalf("b.Members = %d, want untouched 10", got.Members)
	}
}
