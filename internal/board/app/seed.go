package app

import (
	"fmt"
	"time"

	"github.com/modboard/modboard/internal/board/domain"
)

var sampleModules = []string{
	domain.AllModules,
	"AR-501", "CSC306", "CSC309", "CSC313", "CSC318", "CSC327", "CSC337",
	"CSC345", "CSC348", "CSC349", "CSC364", "CSC368", "CSC371", "CSC375",
	"CSC385", "CSC390", "CSP302", "CSP344", "CSP354",
}

type samplePost struct {
	title, body, video, module, stamp string
}

var samplePosts = []samplePost{
	{"Mobile Apps Exam", "The exam is on the 10th of January", "", "CSC306", "05/01/19 22:42"},
	{"Logic Exam", "The exam is on the 21th of January", "", "CSC375", "05/01/19 22:58"},
	{"Slack Page", "Remember to use the slack if you have any questions regarding the coursework since the deadline is approaching", "", "CSC348", "06/01/19 12:16"},
	{"Predicate Logic Tips", "The above video is a quick summary of Predicate Logic for those who are struggling", "kYxYEW2zSlk", "CSC375", "06/01/19 12:58"},
	{"REMINDER: PLEASE COMPLETE THE MODULE FEEDBACK", "The feedback pages are available on Blackboard", "", domain.AllModules, "07/01/19 09:23"},
	{"Marking Scheme Explination", "The above video is Sean explaining the marking scheme for those who are confused with anything", "BQnq3Y-LAD4", "CSC348", "07/01/19 10:43"},
}

// RolesOnly seeds the two roles and nothing else.
func RolesOnly() domain.SeedData {
	return domain.SeedData{Roles: domain.DefaultRoleClaims()}
}

// SampleData is the first-start data set: the two roles, one Member, five
// Customers sharing password, the module list and the sample posts.
func SampleData(password string) (domain.SeedData, error) {
	data := RolesOnly()

	data.Users = append(data.Users, domain.SeedUser{Email: "Member1@email.com", Password: password, Role: domain.RoleMember})
	for i := 1; i <= 5; i++ {
		data.Users = append(data.Users, domain.SeedUser{
			Email:    fmt.Sprintf("Customer%d@email.com", i),
			Password: password,
			Role:     domain.RoleCustomer,
		})
	}

	data.Modules = append([]string(nil), sampleModules...)

	for _, p := range samplePosts {
		at, err := domain.ParseStamp(p.stamp)
		if err != nil {
			return domain.SeedData{}, fmt.Errorf("sample post %q: %w", p.title, err)
		}
		data.Posts = append(data.Posts, domain.SeedPost{
			Title:    p.title,
			Body:     p.body,
			VideoID:  p.video,
			Module:   p.module,
			Author:   "Member1",
			PostedAt: at.In(time.UTC),
		})
	}
	return data, nil
}
