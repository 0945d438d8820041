package wsapi_dto

import "linkcare-service/internal/pkg/lcxml"

type Program struct {
	ID          string
	Code        string
	Name        string
	Description string
}

func ParseProgram(node *lcxml.Node) *Program {
	if !node.Exists() {
		return nil
	}
	return &Program{
		ID:          node.Text("ref"),
		Code:        node.FirstText("code", "program_code"),
		Name:        node.Text("name"),
		Description: node.Text("description"),
	}
}

// Subscription binds a PROGRAM to the TEAM that runs it.
type Subscription struct {
	ID      string
	Name    string
	Program *Program
	Team    *Team
}

func ParseSubscription(node *lcxml.Node) *Subscription {
	if !node.Exists() {
		return nil
	}
	return &Subscription{
		ID:      node.Text("ref"),
		Name:    node.Text("name"),
		Program: ParseProgram(node.Child("program")),
		Team:    ParseTeam(node.Child("team")),
	}
}

// ProgramCode is empty when the subscription or its program is unknown.
func (s *Subscription) ProgramCode() string {
	if s == nil || s.Program == nil {
		return ""
	}
	return s.Program.Code
}
