package catalog

// Projects 实战项目，按难度递增
var Projects = []Project{
	{
		ID:             "erc20-token",
		TitleKey:       "projects.list.erc20.title",
		DescriptionKey: "projects.list.erc20.description",
		Difficulty:     DifficultyBeginner,
		Skills:         []string{"Solidity Basics", "Contract Deployment"},
		EstimatedHours: 4,
		Prerequisites:  []string{"solidity-programming"},
		Resources: []Resource{
			{Type: ResourceDoc, Title: "OpenZeppelin ERC20", URL: "https://docs.openzeppelin.com/contracts/erc20"},
			{Type: ResourceArticle, Title: "ERC20 Standard", URL: "https://eips.ethereum.org/EIPS/eip-20"},
		},
	},
	{
		ID:             "voting-contract",
		TitleKey:       "projects.list.voting.title",
		DescriptionKey: "projects.list.voting.description",
		Difficulty:     DifficultyBeginner,
		Skills:         []string{"State Management", "Events"},
		EstimatedHours: 6,
		Prerequisites:  []string{"solidity-programming"},
		Resources: []Resource{
			{Type: ResourceArticle, Title: "Solidity by Example - Voting", URL: "https://solidity-by-example.org/app/ballot/"},
		},
	},
	{
		ID:             "nft-mint-page",
		TitleKey:       "projects.list.nftMint.title",
		DescriptionKey: "projects.list.nftMint.description",
		Difficulty:     DifficultyElementary,
		Skills:         []string{"ERC-721", "Frontend Integration"},
		EstimatedHours: 10,
		Prerequisites:  []string{"solidity-programming", "frontend-integration"},
		Resources: []Resource{
			{Type: ResourceDoc, Title: "OpenZeppelin ERC721", URL: "https://docs.openzeppelin.com/contracts/erc721"},
		},
	},
	{
		ID:             "multisig-wallet",
		TitleKey:       "projects.list.multisig.title",
		DescriptionKey: "projects.list.multisig.description",
		Difficulty:     DifficultyElementary,
		Skills:         []string{"Access Control", "Security"},
		EstimatedHours: 12,
		Prerequisites:  []string{"solidity-programming", "contract-security"},
		Resources: []Resource{
			{Type: ResourceGithub, Title: "Gnosis Safe Contracts", URL: "https://github.com/safe-global/safe-contracts"},
		},
	},
	{
		ID:             "dex-interface",
		TitleKey:       "projects.list.dex.title",
		DescriptionKey: "projects.list.dex.description",
		Difficulty:     DifficultyIntermediate,
		Skills:         []string{"AMM Understanding", "Liquidity"},
		EstimatedHours: 20,
		Prerequisites:  []string{"frontend-integration", "defi-development"},
	},
	{
		ID:             "nft-marketplace",
		TitleKey:       "projects.list.nftMarketplace.title",
		DescriptionKey: "projects.list.nftMarketplace.description",
		Difficulty:     DifficultyIntermediate,
		Skills:         []string{"Auction", "Royalties"},
		EstimatedHours: 25,
		Prerequisites:  []string{"nft-development", "frontend-integration"},
	},
	{
		ID:             "lending-protocol",
		TitleKey:       "projects.list.lending.title",
		DescriptionKey: "projects.list.lending.description",
		Difficulty:     DifficultyAdvanced,
		Skills:         []string{"Interest Rate Model", "Liquidation"},
		EstimatedHours: 40,
		Prerequisites:  []string{"defi-development", "contract-security"},
	},
	{
		ID:             "dao-governance",
		TitleKey:       "projects.list.dao.title",
		DescriptionKey: "projects.list.dao.description",
		Difficulty:     DifficultyAdvanced,
		Skills:         []string{"Voting", "Proposals", "Timelock"},
		EstimatedHours: 35,
		Prerequisites:  []string{"solidity-programming", "contract-security"},
	},
	{
		ID:             "crosschain-bridge",
		TitleKey:       "projects.list.bridge.title",
		DescriptionKey: "projects.list.bridge.description",
		Difficulty:     DifficultyExpert,
		Skills:         []string{"Cross-chain Messaging", "Security"},
		EstimatedHours: 50,
		Prerequisites:  []string{"crosschain-development", "contract-security"},
		Resources: []Resource{
			{Type: ResourceDoc, Title: "LayerZero Docs", URL: "https://layerzero.gitbook.io/docs/"},
		},
	},
}
