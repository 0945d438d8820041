package wsapi_dto

import "linkcare-service/internal/pkg/lcxml"

type Team struct {
	ID   string
	Code string
	Name string
	Type string
}

func ParseTeam(node *lcxml.Node) *Team {
	if !node.Exists() {
		return nil
	}
	return &Team{
		ID:   node.Text("ref"),
		Code: node.FirstText("code", "team_code"),
		Name: node.Text("name"),
		Type: node.Text("unit"),
	}
}
