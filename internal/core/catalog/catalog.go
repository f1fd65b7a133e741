// Package catalog holds the static choices offered at each wizard step:
// objectives per platform, campaign types and bid strategies per
// (platform, objective), targeting choices and calls to action.
package catalog

import (
	"slices"

	"adsim/internal/core/domain"
)

// Option is a selectable value with its display text.
type Option struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Contains reports whether id is one of options.
func Contains(options []Option, id string) bool {
	return slices.ContainsFunc(options, func(o Option) bool { return o.ID == id })
}

// IDs returns the identifiers of options in order.
func IDs(options []Option) []string {
	ids := make([]string, len(options))
	for i, o := range options {
		ids[i] = o.ID
	}
	return ids
}

var googleObjectives = []Option{
	{ID: "sales", Title: "Sales", Description: "Drive online sales, purchases or sign-ups"},
	{ID: "leads", Title: "Leads", Description: "Get leads and other conversions by encouraging customers to take action"},
	{ID: "traffic", Title: "Website Traffic", Description: "Get more customers to visit your website"},
	{ID: "consideration", Title: "Product & Brand Consideration", Description: "Encourage customers to explore your products or services"},
	{ID: "awareness", Title: "Brand Awareness & Reach", Description: "Reach a broad audience and build awareness"},
	{ID: "app", Title: "App Promotion", Description: "Increase installs and engagement for your app"},
}

var metaObjectives = []Option{
	{ID: "conversions", Title: "Conversions", Description: "Drive valuable actions on your website or app"},
	{ID: "leads", Title: "Lead Generation", Description: "Collect lead information from interested people"},
	{ID: "traffic", Title: "Traffic", Description: "Send more people to a destination on or off Meta"},
	{ID: "awareness", Title: "Brand Awareness", Description: "Show ads to people most likely to remember them"},
	{ID: "app", Title: "App Installs", Description: "Get more people to install your app"},
	{ID: "engagement", Title: "Engagement", Description: "Get more page likes, event responses or post engagement"},
}

// Objectives returns the objectives offered by a platform. An unknown
// platform has none.
func Objectives(p domain.Platform) []Option {
	switch p {
	case domain.PlatformGoogle:
		return slices.Clone(googleObjectives)
	case domain.PlatformMeta:
		return slices.Clone(metaObjectives)
	default:
		return nil
	}
}
