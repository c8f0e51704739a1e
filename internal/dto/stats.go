package dto

import "strconv"

// DashboardCardDTO is one admin dashboard card
type DashboardCardDTO struct {
	Title    string `json:"title"`
	Value    string `json:"value"`
	IconName string `json:"iconName"`
}

// PublicStatDTO is one landing page statistic
type PublicStatDTO struct {
	Number   string `json:"number"`
	Label    string `json:"label"`
	IconName string `json:"iconName"`
}

// ToDashboardCards renders the admin dashboard counts in display order
func ToDashboardCards(total, pending, inProgress, resolved int64) []DashboardCardDTO {
	return []DashboardCardDTO{
		{Title: "Total Complaints", Value: strconv.FormatInt(total, 10), IconName: "FileText"},
		{Title: "Pending Review", Value: strconv.FormatInt(pending, 10), IconName: "Clock"},
		{Title: "In Progress", Value: strconv.FormatInt(inProgress, 10), IconName: "Users"},
		{Title: "Resolved", Value: strconv.FormatInt(resolved, 10), IconName: "CheckCircle"},
	}
}

// ToPublicStats renders the landing page statistics
func ToPublicStats(resolved int64) []PublicStatDTO {
	return []PublicStatDTO{
		{Number: strconv.FormatInt(resolved, 10) + "+", Label: "Complaints Resolved", IconName: "TrendingUp"},
		{Number: "24/7", Label: "Portal Availability", IconName: "Clock"},
		{Number: "99.9%", Label: "System Uptime", IconName: "Zap"},
		{Number: "100%", Label: "Transparency", IconName: "Eye"},
	}
}
