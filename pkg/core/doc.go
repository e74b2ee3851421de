// Package core implements view cores: the platform objects that realize a
// portable view on top of one native widget.
//
// A core is created for a view with the view's native widget. On creation
// it pushes the view's visibility into the widget and attaches the widget
// into the native container of the nearest ancestor view that has a core.
// A view without a parent is a root and attaches nowhere.
//
//	c := core.New(view, tk.NewLabel("hello"), provider)
//	c.SetBounds(geometry.Rect{X: 10, Y: 20, Width: 80, Height: 16})
//	size := c.CalcPreferredSize()
//
// # Layout Negotiation
//
// Layout queries flow top-down through CalcPreferredSize and its
// constrained variants; placement flows top-down through SetBounds. The
// size part of SetBounds is pushed into the core's own widget while the
// position is applied by the parent core, because only a container can move
// its children.
//
// # Containers
//
// Cores created with NewContainer hold children. Other cores have no
// AcceptChild or RepositionChild methods; attaching a child below such a
// core is a programming error reported with panic(*errors.ProgrammingError).
//
// # Threading
//
// Cores, like the widgets they wrap, belong to the UI thread. No method is
// safe for concurrent use and none blocks.
//
// # Constructor Conventions
//
// Cores are long-lived objects and use NewX() constructors returning
// pointers; the Registry maps view kinds to the factories that call them.
package core
