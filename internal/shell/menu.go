package shell

import (
	"fmt"
	"strings"
)

type actionFunc func(s *Shell) error

// menuItem is one numbered entry of the main menu.
type menuItem struct {
	Name  string
	Label string
	Run   actionFunc
}

// registry holds the main menu in display order. Items are numbered from
// 1 by position.
type registry struct {
	items []menuItem
	names map[string]struct{}
}

func newRegistry() *registry {
	return &registry{names: make(map[string]struct{})}
}

func (r *registry) register(item menuItem) error {
	item.Name = strings.TrimSpace(item.Name)
	if item.Name == "" {
		return fmt.Errorf("shell menu: empty item name")
	}
	if item.Run == nil {
		return fmt.Errorf("shell menu: %q has no handler", item.Name)
	}
	if _, ok := r.names[item.Name]; ok {
		return fmt.Errorf("shell menu: duplicate item %q", item.Name)
	}
	r.names[item.Name] = struct{}{}
	r.items = append(r.items, item)
	return nil
}

// resolve maps a typed choice to an item. Only a single digit naming an
// item is accepted.
func (r *registry) resolve(input string) (menuItem, bool) {
	if len(input) != 1 || input[0] < '1' || input[0] > '9' {
		return menuItem{}, false
	}
	n := int(input[0] - '1')
	if n >= len(r.items) {
		return menuItem{}, false
	}
	return r.items[n], true
}

func (s *Shell) buildMenu() *registry {
	r := newRegistry()
	mustRegister := func(item menuItem) {
		if err := r.register(item); err != nil {
			panic(err)
		}
	}

	mustRegister(menuItem{Name: "students", Label: "Add Students", Run: (*Shell).addStudents})
	mustRegister(menuItem{Name: "grades", Label: "Add Grades", Run: (*Shell).addGrades})
	mustRegister(menuItem{Name: "display", Label: "Display Student Grades", Run: (*Shell).display})
	mustRegister(menuItem{Name: "edit", Label: "Search / Edit Student", Run: (*Shell).searchEdit})
	if s.store != nil {
		mustRegister(menuItem{Name: "save", Label: "Save", Run: (*Shell).Save})
	}
	mustRegister(menuItem{Name: "exit", Label: "Exit", Run: (*Shell).exit})
	return r
}

func (s *Shell) showMenu() {
	header := "\n--- Grade Book Menu ---"
	if s.store != nil && s.Dirty() {
		header += " (unsaved changes)"
	}
	fmt.Fprintln(s.out, header)
	for i, item := range s.menu.items {
		fmt.Fprintf(s.out, "%d. %s\n", i+1, item.Label)
	}
}

// choose prompts until a valid item number is entered.
func (s *Shell) choose() (menuItem, error) {
	n := len(s.menu.items)
	for {
		input, err := s.readLine(fmt.Sprintf("Enter choice (1-%d): ", n))
		if err != nil {
			return menuItem{}, err
		}
		if item, ok := s.menu.resolve(strings.TrimSpace(input)); ok {
			return item, nil
		}
		fmt.Fprintf(s.out, "ERROR: Please enter a number from 1 to %d.\n", n)
	}
}
