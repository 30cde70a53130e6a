package entity

import "strings"

// Channel is a sales channel with its own SKU and sales collections.
type Channel string

const (
	ChannelEbay Channel = "ebay"
	ChannelWoo  Channel = "woo"
)

// Channels lists every supported channel in report order.
var Channels = []Channel{ChannelEbay, ChannelWoo}

// ParseChannel normalizes user input into a Channel.
func ParseChannel(s string) (Channel, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ebay":
		return ChannelEbay, true
	case "woo", "woocommerce":
		return ChannelWoo, true
	}
	return "", false
}

// DisplayName returns the human readable channel name.
func (c Channel) DisplayName() string {
	switch c {
	case ChannelEbay:
		return "eBay"
	case ChannelWoo:
		return "WooCommerce"
	}
	return string(c)
}
