package catalog

import (
	"slices"

	"adsim/internal/core/domain"
)

var (
	googleSearch   = Option{ID: "search", Title: "Search Campaign", Description: "Text ads in Google search results"}
	googleDisplay  = Option{ID: "display", Title: "Display Campaign", Description: "Visual ads across Google Display Network"}
	googleShopping = Option{ID: "shopping", Title: "Shopping Campaign", Description: "Product listings in Google search"}
	googleVideo    = Option{ID: "video", Title: "Video Campaign", Description: "Video ads on YouTube"}
	googleApp      = Option{ID: "app", Title: "App Campaign", Description: "Promote your app across Google networks"}

	metaImage      = Option{ID: "image", Title: "Image Ad", Description: "Single image ads in feed"}
	metaCarousel   = Option{ID: "carousel", Title: "Carousel Ad", Description: "Multiple images or videos in a single ad"}
	metaCollection = Option{ID: "collection", Title: "Collection Ad", Description: "Feature products from catalog"}
	metaVideo      = Option{ID: "video", Title: "Video Ad", Description: "Video ads in feed and stories"}
	metaSlideshow  = Option{ID: "slideshow", Title: "Slideshow Ad", Description: "Lightweight video ads from images"}
	metaApp        = Option{ID: "app", Title: "App Ad", Description: "Promote app installs and engagement"}
)

// CampaignTypes returns the ad formats available for an objective. The list
// depends on the objective, so nothing is offered until one is chosen.
func CampaignTypes(p domain.Platform, objective string) []Option {
	if objective == "" {
		return nil
	}
	switch p {
	case domain.PlatformGoogle:
		switch objective {
		case "sales", "leads":
			return []Option{googleSearch, googleDisplay, googleShopping}
		case "traffic", "consideration":
			return []Option{googleSearch, googleDisplay, googleVideo}
		case "awareness":
			return []Option{googleDisplay, googleVideo}
		case "app":
			return []Option{googleApp}
		default:
			return []Option{googleSearch, googleDisplay, googleVideo, googleShopping}
		}
	case domain.PlatformMeta:
		switch objective {
		case "conversions", "leads":
			return []Option{metaImage, metaCarousel, metaCollection}
		case "traffic":
			return []Option{metaImage, metaVideo, metaCarousel}
		case "awareness", "engagement":
			return []Option{metaImage, metaVideo, metaSlideshow}
		case "app":
			return []Option{metaApp}
		default:
			return []Option{metaImage, metaVideo, metaCarousel, metaCollection}
		}
	default:
		return nil
	}
}

var (
	targetCPA       = Option{ID: "target_cpa", Title: "Target CPA", Description: "Set a target cost per acquisition"}
	maxConversions  = Option{ID: "max_conversions", Title: "Maximize Conversions", Description: "Get the most conversions within your budget"}
	targetROAS      = Option{ID: "target_roas", Title: "Target ROAS", Description: "Set a target return on ad spend"}
	maxClicks       = Option{ID: "max_clicks", Title: "Maximize Clicks", Description: "Get the most clicks within your budget"}
	manualCPC       = Option{ID: "manual_cpc", Title: "Manual CPC", Description: "Set bids manually for each click"}
	impressionShare = Option{ID: "target_impression_share", Title: "Target Impression Share", Description: "Set a target percentage of auctions to show ads"}
	viewableCPM     = Option{ID: "viewable_cpm", Title: "Viewable CPM", Description: "Pay for impressions that are viewable"}

	lowestCostBidCap  = Option{ID: "lowest_cost_with_bid_cap", Title: "Lowest Cost with Bid Cap", Description: "Get the most results while controlling your cost per result"}
	costCap           = Option{ID: "cost_cap", Title: "Cost Cap", Description: "Control your cost per result"}
	roasGoal          = Option{ID: "roas_goal", Title: "ROAS Goal", Description: "Control your return on ad spend"}
	lowestCost        = Option{ID: "lowest_cost", Title: "Lowest Cost", Description: "Get the most results within your budget"}
	bidCap            = Option{ID: "bid_cap", Title: "Bid Cap", Description: "Control your max cost per click"}
	reachAndFrequency = Option{ID: "reach_and_frequency", Title: "Reach and Frequency", Description: "Control how many people see your ad and how often"}
)

// BidStrategies returns the bidding policies available for an objective.
func BidStrategies(p domain.Platform, objective string) []Option {
	if objective == "" {
		return nil
	}
	switch p {
	case domain.PlatformGoogle:
		switch objective {
		case "sales", "leads":
			return []Option{targetCPA, maxConversions, targetROAS}
		case "traffic":
			return []Option{maxClicks, manualCPC}
		case "consideration", "awareness":
			return []Option{impressionShare, viewableCPM}
		default:
			return []Option{maxConversions, manualCPC, targetCPA}
		}
	case domain.PlatformMeta:
		switch objective {
		case "conversions", "leads":
			return []Option{lowestCostBidCap, costCap, roasGoal}
		case "traffic":
			return []Option{lowestCost, bidCap}
		case "awareness", "engagement":
			return []Option{lowestCost, reachAndFrequency}
		default:
			return []Option{lowestCost, bidCap, costCap}
		}
	default:
		return nil
	}
}

// BidStrategy looks up a single strategy by id.
func BidStrategy(p domain.Platform, objective, id string) (Option, bool) {
	options := BidStrategies(p, objective)
	i := slices.IndexFunc(options, func(o Option) bool { return o.ID == id })
	if i < 0 {
		return Option{}, false
	}
	return options[i], true
}
