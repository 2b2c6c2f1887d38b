// Package router keeps the stack of screens the learner has walked through
// and turns navigation messages into stack changes.
package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/aidu/english/internal/screen"
)

type (
	// PushScreenMsg opens Screen above the current one.
	PushScreenMsg struct{ Screen screen.Screen }
	// PopScreenMsg goes back one screen.
	PopScreenMsg struct{}
	// ReplaceScreenMsg swaps the top screen, e.g. quiz to result.
	ReplaceScreenMsg struct{ Screen screen.Screen }
	// ResumedMsg reaches a screen uncovered by a pop so it can reload
	// progress that changed above it.
	ResumedMsg struct{}
)

// Open returns a command that pushes s.
func Open(s screen.Screen) tea.Cmd {
	return func() tea.Msg { return PushScreenMsg{Screen: s} }
}

// Back returns a command that pops the top screen.
func Back() tea.Cmd {
	return func() tea.Msg { return PopScreenMsg{} }
}

// Swap returns a command that replaces the top screen with s.
func Swap(s screen.Screen) tea.Cmd {
	return func() tea.Msg { return ReplaceScreenMsg{Screen: s} }
}

// IsNavigation reports whether msg moves the stack.
func IsNavigation(msg tea.Msg) bool {
	switch msg.(type) {
	case PushScreenMsg, PopScreenMsg, ReplaceScreenMsg, ResumedMsg:
		return true
	}
	return false
}

// Router is a stack of screens; only the top one sees messages.
type Router struct {
	stack []screen.Screen
}

// New returns a Router with root at the bottom.
func New(root screen.Screen) *Router {
	return &Router{stack: []screen.Screen{root}}
}

// Push stacks s and starts it.
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

// Pop drops the top screen and resumes the one below. The root is never
// popped; Pop then returns nil.
func (r *Router) Pop() tea.Cmd {
	if len(r.stack) < 2 {
		return nil
	}
	r.stack[len(r.stack)-1] = nil
	r.stack = r.stack[:len(r.stack)-1]
	return func() tea.Msg { return ResumedMsg{} }
}

// Replace puts s where the top screen was and starts it.
func (r *Router) Replace(s screen.Screen) tea.Cmd {
	if n := len(r.stack); n > 0 {
		r.stack[n-1] = s
	} else {
		r.stack = []screen.Screen{s}
	}
	return s.Init()
}

// Active is the top screen, or nil for an empty stack.
func (r *Router) Active() screen.Screen {
	if n := len(r.stack); n > 0 {
		return r.stack[n-1]
	}
	return nil
}

func (r *Router) Depth() int { return len(r.stack) }

// Update applies navigation messages and hands everything else to the
// active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case PopScreenMsg:
		return r.Pop()
	case ReplaceScreenMsg:
		return r.Replace(msg.Screen)
	}
	top := r.Active()
	if top == nil {
		return nil
	}
	next, cmd := top.Update(msg)
	r.stack[len(r.stack)-1] = next
	return cmd
}

// View draws the active screen.
func (r *Router) View(width, height int) string {
	if top := r.Active(); top != nil {
		return top.View(width, height)
	}
	return ""
}
