package value

import (
	"errors"
	"reflect"
	"testing"
)

func sampleTree(t *testing.T) Value {
	t.Helper()
	return mustMap(t,
		Entry{"name", String("svc")},
		Entry{"ports", List(Int(80), Int(443))},
		Entry{"with space", mustMap(t, Entry{"x", Null()})},
	)
}

func TestWalkPreOrder(t *testing.T) {
	var paths []string
	err := Walk(sampleTree(t), func(path Path, v Value) error {
		paths = append(paths, path.String()+":"+v.Kind().String())
		return nil
	})
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}

	want := []string{
		"$:map",
		"$.name:string",
		"$.ports:list",
		"$.ports[0]:number",
		"$.ports[1]:number",
		`$["with space"]:map`,
		`$["with space"].x:null`,
	}
	if !reflect.DeepEqual(paths, want) {
		t.Errorf("Walk() paths =\n%v\nwant\n%v", paths, want)
	}
}

func TestWalkSkipChildren(t *testing.T) {
	count := 0
	_ = Walk(sampleTree(t), func(path Path, v Value) error {
		count++
		if v.Kind() == KindList {
			return SkipChildren
		}
		return nil
	})
	if count != 5 {
		t.Errorf("visited %d nodes, want 5", count)
	}
}

func TestWalkStopsOnError(t *testing.T) {
	stop := errors.New("stop")
	count := 0
	err := Walk(sampleTree(t), func(path Path, v Value) error {
		count++
		if count == 2 {
			return stop
		}
		return nil
	})
	if !errors.Is(err, stop) || count != 2 {
		t.Errorf("Walk() = %v after %d nodes", err, count)
	}
}

type depthVisitor struct {
	BaseVisitor
	events []string
}

func (d *depthVisitor) EnterMap(p Path, v Value) error {
	d.events = append(d.events, "enter "+p.String())
	return nil
}

func (d *depthVisitor) LeaveMap(p Path, v Value) error {
	d.events = append(d.events, "leave "+p.String())
	return nil
}

func TestAcceptEnterLeave(t *testing.T) {
	d := &depthVisitor{}
	if err := Accept(sampleTree(t), d); err != nil {
		t.Fatalf("Accept() error = %v", err)
	}
	want := []string{"enter $", `enter $["with space"]`, `leave $["with space"]`, "leave $"}
	if !reflect.DeepEqual(d.events, want) {
		t.Errorf("events = %v, want %v", d.events, want)
	}
}

func TestCollect(t *testing.T) {
	s := Collect(sampleTree(t))
	if s.Nodes != 7 {
		t.Errorf("Nodes = %d, want 7", s.Nodes)
	}
	if s.MaxDepth != 2 {
		t.Errorf("MaxDepth = %d, want 2", s.MaxDepth)
	}
	if s.ByKind[KindNumber] != 2 || s.ByKind[KindMap] != 2 {
		t.Errorf("ByKind = %v", s.ByKind)
	}
}
