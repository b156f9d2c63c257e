package services

import "proposaldesk/apiclient"

// StatusLabel is the display name for a proposal status.
func StatusLabel(status apiclient.ProposalStatus) string {
	switch status {
	case apiclient.StatusDraft:
		return "Draft"
	case apiclient.StatusSubmitted:
		return "Submitted"
	case apiclient.StatusUnderReview:
		return "Under Review"
	case apiclient.StatusApproved:
		return "Approved"
	case apiclient.StatusRejected:
		return "Rejected"
	default:
		return string(status)
	}
}

// StatusBadgeClass maps a proposal status to its badge CSS class.
func StatusBadgeClass(status apiclient.ProposalStatus) string {
	switch status {
	case apiclient.StatusSubmitted:
		return "badge-info"
	case apiclient.StatusUnderReview:
		return "badge-warning"
	case apiclient.StatusApproved:
		return "badge-success"
	case apiclient.StatusRejected:
		return "badge-error"
	default:
		return "badge-ghost"
	}
}

// UnitTypeLabel is the display name for a unit-mix bedroom category.
func UnitTypeLabel(t apiclient.UnitType) string {
	switch t {
	case apiclient.UnitStudio:
		return "Studio"
	case apiclient.UnitOneBR:
		return "1 Bedroom"
	case apiclient.UnitTwoBR:
		return "2 Bedroom"
	case apiclient.UnitThreeBR:
		return "3 Bedroom"
	case apiclient.UnitFourBR:
		return "4+ Bedroom"
	default:
		return string(t)
	}
}
