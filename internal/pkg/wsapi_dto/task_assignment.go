package wsapi_dto

import (
	"github.com/beevik/etree"

	"linkcare-service/internal/pkg/lcxml"
)

// Role ids used in task assignments
const (
	RoleCaseManager = "24"
	RoleService     = "47"
	RolePatient     = "39"
)

type TaskAssignment struct {
	TeamID string
	RoleID string
	UserID string
}

func NewTaskAssignment(roleID, teamID, userID string) *TaskAssignment {
	return &TaskAssignment{RoleID: roleID, TeamID: teamID, UserID: userID}
}

func ParseTaskAssignment(node *lcxml.Node) *TaskAssignment {
	if !node.Exists() {
		return nil
	}
	return &TaskAssignment{
		TeamID: node.Text("team/id"),
		RoleID: node.Text("role/id"),
		UserID: node.Text("user/id"),
	}
}

func (a *TaskAssignment) ToXML(doc *lcxml.Document, parent *etree.Element) *etree.Element {
	if parent == nil {
		parent = doc.Root()
	}
	doc.CreateChildNode(doc.CreateChildNode(parent, "team"), "id", a.TeamID)
	doc.CreateChildNode(doc.CreateChildNode(parent, "role"), "id", a.RoleID)
	doc.CreateChildNode(doc.CreateChildNode(parent, "user"), "id", a.UserID)
	return parent
}
