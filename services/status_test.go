package services

import (
	"testing"

	"proposaldesk/apiclient"
)

func TestStatusLabel(t *testing.T) {
	tests := []struct {
		status apiclient.ProposalStatus
		want   string
	}{
		{apiclient.StatusDraft, "Draft"},
		{apiclient.StatusSubmitted, "Submitted"},
		{apiclient.StatusUnderReview, "Under Review"},
		{apiclient.StatusApproved, "Approved"},
		{apiclient.StatusRejected, "Rejected"},
		{apiclient.ProposalStatus("archived"), "archived"},
	}

	for _, tt := range tests {
		if got := StatusLabel(tt.status); got != tt.want {
			t.Errorf("StatusLabel(%q) = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestStatusBadgeClass(t *testing.T) {
	tests := []struct {
		status apiclient.ProposalStatus
		want   string
	}{
		{apiclient.StatusDraft, "badge-ghost"},
		{apiclient.StatusSubmitted, "badge-info"},
		{apiclient.StatusUnderReview, "badge-warning"},
		{apiclient.StatusApproved, "badge-success"},
		{apiclient.StatusRejected, "badge-error"},
		{apiclient.ProposalStatus("unknown"), "badge-ghost"},
	}

	for _, tt := range tests {
		if got := StatusBadgeClass(tt.status); got != tt.want {
			t.Errorf("StatusBadgeClass(%q) = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestUnitTypeLabel(t *testing.T) {
	tests := []struct {
		unitType apiclient.UnitType
		want     string
	}{
		{apiclient.UnitStudio, "Studio"},
		{apiclient.UnitOneBR, "1 Bedroom"},
		{apiclient.UnitTwoBR, "2 Bedroom"},
		{apiclient.UnitThreeBR, "3 Bedroom"},
		{apiclient.UnitFourBR, "4+ Bedroom"},
		{apiclient.UnitType("penthouse"), "penthouse"},
	}

	for _, tt := range tests {
		if got := UnitTypeLabel(tt.unitType); got != tt.want {
			t.Errorf("UnitTypeLabel(%q) = %q, want %q", tt.unitType, got, tt.want)
		}
	}
}
