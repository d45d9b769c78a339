package format

import "strings"

// networkNames maps normalized network codes to their display names.
var networkNames = map[string]string{
	"ETH":       "Ethereum (ERC-20)",
	"ETHEREUM":  "Ethereum (ERC-20)",
	"ERC20":     "Ethereum (ERC-20)",
	"ERC-20":    "Ethereum (ERC-20)",
	"TRON":      "Tron (TRC-20)",
	"TRX":       "Tron (TRC-20)",
	"TRC20":     "Tron (TRC-20)",
	"TRC-20":    "Tron (TRC-20)",
	"BSC":       "BNB Smart Chain (BEP-20)",
	"BNB":       "BNB Smart Chain (BEP-20)",
	"BINANCE":   "BNB Smart Chain (BEP-20)",
	"BEP20":     "BNB Smart Chain (BEP-20)",
	"BEP-20":    "BNB Smart Chain (BEP-20)",
	"POLYGON":   "Polygon (MATIC)",
	"MATIC":     "Polygon (MATIC)",
	"AVAX":      "Avalanche (C-Chain)",
	"AVALANCHE": "Avalanche (C-Chain)",
	"AVAX-C":    "Avalanche (C-Chain)",
	"AVAX-X":    "Avalanche (X-Chain)",
	"AVAX-P":    "Avalanche (P-Chain)",
	"BTC":       "Bitcoin",
	"BITCOIN":   "Bitcoin",
	"SOL":       "Solana",
	"SOLANA":    "Solana",
}

// explorerBases maps normalized network codes to transaction explorer URL
// prefixes. Networks without an entry get no link; a URL is never guessed.
var explorerBases = map[string]string{
	"ETH":       "https://etherscan.io/tx/",
	"ETHEREUM":  "https://etherscan.io/tx/",
	"ERC20":     "https://etherscan.io/tx/",
	"ERC-20":    "https://etherscan.io/tx/",
	"TRON":      "https://tronscan.org/#/transaction/",
	"TRX":       "https://tronscan.org/#/transaction/",
	"TRC20":     "https://tronscan.org/#/transaction/",
	"TRC-20":    "https://tronscan.org/#/transaction/",
	"BSC":       "https://bscscan.com/tx/",
	"BNB":       "https://bscscan.com/tx/",
	"BINANCE":   "https://bscscan.com/tx/",
	"BEP20":     "https://bscscan.com/tx/",
	"BEP-20":    "https://bscscan.com/tx/",
	"POLYGON":   "https://polygonscan.com/tx/",
	"MATIC":     "https://polygonscan.com/tx/",
	"AVAX":      "https://snowtrace.io/tx/",
	"AVALANCHE": "https://snowtrace.io/tx/",
	"AVAX-C":    "https://snowtrace.io/tx/",
	"AVAX-X":    "https://avascan.info/blockchain/x/tx/",
	"AVAX-P":    "https://avascan.info/blockchain/p/tx/",
	"C-CHAIN":   "https://snowtrace.io/tx/",
	"X-CHAIN":   "https://avascan.info/blockchain/x/tx/",
	"P-CHAIN":   "https://avascan.info/blockchain/p/tx/",
	"BTC":       "https://www.blockchain.com/btc/tx/",
	"BITCOIN":   "https://www.blockchain.com/btc/tx/",
	"SOL":       "https://solscan.io/tx/",
	"SOLANA":    "https://solscan.io/tx/",
}

// PrettyNetworkName upgrades a raw network code to its display name.
// Unknown codes pass through unchanged.
func PrettyNetworkName(code string) string {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if name, ok := networkNames[normalized]; ok {
		return name
	}
	return code
}

// ExplorerURL resolves the block-explorer link for a transaction hash.
// Returns "" when either argument is missing or the network is unmapped.
func ExplorerURL(network, hash string) string {
	network = strings.ToUpper(strings.TrimSpace(network))
	hash = strings.TrimSpace(hash)
	if network == "" || hash == "" {
		return ""
	}
	base, ok := explorerBases[network]
	if !ok {
		// Display names round-trip too: "Ethereum (ERC-20)" resolves like ETH.
		base, ok = explorerBases[displayToCode(network)]
	}
	if !ok {
		return ""
	}
	return base + hash
}

// displayToCode recovers the short code from an already-prettified display
// name so values normalized earlier in the pipeline still resolve.
func displayToCode(display string) string {
	if open := strings.IndexByte(display, '('); open >= 0 {
		if close := strings.IndexByte(display, ')'); close > open+1 {
			return strings.ToUpper(display[open+1 : close])
		}
	}
	return strings.ToUpper(strings.Fields(display)[0])
}
