package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Direction specifies the layout direction for a Stack.
type Direction int

const (
	DirectionVertical Direction = iota
	DirectionHorizontal
)

// Align positions children on the cross axis.
type Align int

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
)

// Stack arranges children in a single direction with a fixed gap.
type Stack struct {
	BaseComponent
	children  []Renderable
	direction Direction
	gap       int
	align     Align
}

// NewStack creates a new stack with default vertical layout.
func NewStack(children ...Renderable) *Stack {
	return &Stack{
		BaseComponent: NewBaseComponent(),
		children:      children,
	}
}

// VStack creates a vertical stack.
func VStack(children ...Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionVertical)
}

// HStack creates a horizontal stack.
func HStack(children ...Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionHorizontal)
}

// View renders the stack and its children.
func (s *Stack) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the stack, passing ctx to contextual children.
func (s *Stack) ViewWithContext(ctx RenderContext) string {
	views := make([]string, 0, len(s.children))
	for _, child := range s.children {
		if child == nil {
			continue
		}
		var view string
		if contextual, ok := child.(ContextualRenderable); ok {
			view = contextual.ViewWithContext(ctx)
		} else {
			view = child.View()
		}
		if view != "" {
			views = append(views, view)
		}
	}

	style := s.ComputeStyle(ctx)
	if ctx.MaxWidth > 0 {
		style = style.MaxWidth(ctx.MaxWidth)
	}
	if len(views) == 0 {
		return style.Render("")
	}
	if s.direction == DirectionHorizontal {
		return style.Render(lipgloss.JoinHorizontal(s.position(), s.spaced(views, strings.Repeat(" ", s.gap))...))
	}
	return style.Render(lipgloss.JoinVertical(s.position(), s.spaced(views, strings.Repeat("\n", s.gap-1))...))
}

func (s *Stack) spaced(views []string, spacer string) []string {
	if s.gap <= 0 {
		return views
	}
	out := make([]string, 0, len(views)*2-1)
	for i, view := range views {
		if i > 0 {
			out = append(out, spacer)
		}
		out = append(out, view)
	}
	return out
}

func (s *Stack) position() lipgloss.Position {
	switch s.align {
	case AlignCenter:
		return lipgloss.Center
	case AlignEnd:
		if s.direction == DirectionHorizontal {
			return lipgloss.Bottom
		}
		return lipgloss.Right
	default:
		if s.direction == DirectionHorizontal {
			return lipgloss.Top
		}
		return lipgloss.Left
	}
}

// WithDirection sets the layout direction.
func (s *Stack) WithDirection(dir Direction) *Stack {
	s.direction = dir
	return s
}

// WithGap sets the spacing between children, in columns for horizontal
// stacks and rows for vertical ones.
func (s *Stack) WithGap(gap int) *Stack {
	s.gap = gap
	return s
}

// WithAlign sets the cross axis alignment.
func (s *Stack) WithAlign(align Align) *Stack {
	s.align = align
	return s
}

// WithAppliers appends context-aware style modifiers.
func (s *Stack) WithAppliers(appliers ...StyleFunc) *Stack {
	s.AddAppliers(appliers...)
	return s
}

// Add appends children to the stack.
func (s *Stack) Add(children ...Renderable) *Stack {
	s.children = append(s.children, children...)
	return s
}

// Len returns the number of children.
func (s *Stack) Len() int {
	return len(s.children)
}
