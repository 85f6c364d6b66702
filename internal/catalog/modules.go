package catalog

// Modules 学习路线全部模块，按 foundation → expert 排列
var Modules = []Module{
	// 基础层
	{
		ID:             "blockchain-basics",
		TitleKey:       "modules.blockchainBasics.title",
		DescriptionKey: "modules.blockchainBasics.description",
		Level:          LevelFoundation,
		Hours:          20,
		Icon:           "cube",
		Color:          "purple",
		Topics: []Topic{
			{
				ID:             "distributed-systems",
				TitleKey:       "modules.blockchainBasics.topics.distributedSystems",
				DescriptionKey: "modules.blockchainBasics.topics.distributedSystemsDesc",
				Resources: []Resource{
					{Type: ResourceDoc, Title: "MIT Distributed Systems", URL: "https://pdos.csail.mit.edu/6.824/"},
					{Type: ResourceVideo, Title: "MIT 6.824 分布式系统", URL: "https://www.youtube.com/watch?v=cQP8WApzIQQ"},
					{Type: ResourceVideo, Title: "区块链底层技术 - 分布式系统基础", URL: "https://www.bilibili.com/video/BV1Vt411X7JF"},
				},
			},
			{
				ID:             "consensus-mechanisms",
				TitleKey:       "modules.blockchainBasics.topics.consensusMechanisms",
				DescriptionKey: "modules.blockchainBasics.topics.consensusMechanismsDesc",
				Resources: []Resource{
					{Type: ResourceArticle, Title: "PoW vs PoS", URL: "https://ethereum.org/en/developers/docs/consensus-mechanisms/"},
					{Type: ResourceVideo, Title: "共识机制详解 - PoW vs PoS", URL: "https://www.youtube.com/watch?v=M3EFi_POhps"},
				},
			},
			{
				ID:             "cryptography-basics",
				TitleKey:       "modules.blockchainBasics.topics.cryptographyBasics",
				DescriptionKey: "modules.blockchainBasics.topics.cryptographyBasicsDesc",
				Resources: []Resource{
					{Type: ResourceDoc, Title: "Cryptography Fundamentals", URL: "https://cryptobook.nakov.com/"},
					{Type: ResourceVideo, Title: "密码学入门 - 公钥密码学", URL: "https://www.youtube.com/watch?v=GSIDS_lvRv4"},
				},
			},
			{ID: "hash-algorithms", TitleKey: "modules.blockchainBasics.topics.hashAlgorithms", DescriptionKey: "modules.blockchainBasics.topics.hashAlgorithmsDesc"},
			{ID: "merkle-trees", TitleKey: "modules.blockchainBasics.topics.merkleTrees", DescriptionKey: "modules.blockchainBasics.topics.merkleTreesDesc"},
		},
	},
	{
		ID:             "ethereum-fundamentals",
		TitleKey:       "modules.ethereumFundamentals.title",
		DescriptionKey: "modules.ethereumFundamentals.description",
		Level:          LevelFoundation,
		Hours:          15,
		Icon:           "ethereum",
		Color:          "blue",
		Prerequisites:  []string{"blockchain-basics"},
		Topics: []Topic{
			{
				ID:             "evm",
				TitleKey:       "modules.ethereumFundamentals.topics.evm",
				DescriptionKey: "modules.ethereumFundamentals.topics.evmDesc",
				Resources: []Resource{
					{Type: ResourceDoc, Title: "EVM Deep Dive", URL: "https://ethereum.org/en/developers/docs/evm/"},
					{Type: ResourceArticle, Title: "Understanding EVM", URL: "https://www.evm.codes/"},
					{Type: ResourceVideo, Title: "以太坊虚拟机 EVM 原理详解", URL: "https://www.bilibili.com/video/BV1HP4y1W7Ep"},
				},
			},
			{
				ID:             "gas-mechanism",
				TitleKey:       "modules.ethereumFundamentals.topics.gasMechanism",
				DescriptionKey: "modules.ethereumFundamentals.topics.gasMechanismDesc",
				Resources: []Resource{
					{Type: ResourceDoc, Title: "Gas and Fees", URL: "https://ethereum.org/en/developers/docs/gas/"},
				},
			},
			{ID: "account-model", TitleKey: "modules.ethereumFundamentals.topics.accountModel", DescriptionKey: "modules.ethereumFundamentals.topics.accountModelDesc"},
			{ID: "transaction-structure", TitleKey: "modules.ethereumFundamentals.topics.transactionStructure", DescriptionKey: "modules.ethereumFundamentals.topics.transactionStructureDesc"},
		},
	},
	{
		ID:             "web3-ecosystem",
		TitleKey:       "modules.web3Ecosystem.title",
		DescriptionKey: "modules.web3Ecosystem.description",
		Level:          LevelFoundation,
		Hours:          10,
		Icon:           "globe",
		Color:          "cyan",
		Topics: []Topic{
			{
				ID:             "defi-overview",
				TitleKey:       "modules.web3Ecosystem.topics.defiOverview",
				DescriptionKey: "modules.web3Ecosystem.topics.defiOverviewDesc",
				Resources: []Resource{
					{Type: ResourceDoc, Title: "DeFi Llama", URL: "https://defillama.com/"},
					{Type: ResourceArticle, Title: "DeFi Guide", URL: "https://ethereum.org/en/defi/"},
				},
			},
			{ID: "nft-overview", TitleKey: "modules.web3Ecosystem.topics.nftOverview", DescriptionKey: "modules.web3Ecosystem.topics.nftOverviewDesc"},
			{ID: "dao-overview", TitleKey: "modules.web3Ecosystem.topics.daoOverview", DescriptionKey: "modules.web3Ecosystem.topics.daoOverviewDesc"},
			{ID: "layer2-overview", TitleKey: "modules.web3Ecosystem.topics.layer2Overview", DescriptionKey: "modules.web3Ecosystem.topics.layer2OverviewDesc"},
		},
	},

	// 开发层
	{
		ID:             "solidity-programming",
		TitleKey:       "modules.solidityProgramming.title",
		DescriptionKey: "modules.solidityProgramming.description",
		Level:          LevelDevelopment,
		Hours:          40,
		Icon:           "code",
		Color:          "purple",
		Prerequisites:  []string{"ethereum-fundamentals"},
		Topics: []Topic{
			{
				ID:             "syntax-basics",
				TitleKey:       "modules.solidityProgramming.topics.syntaxBasics",
				DescriptionKey: "modules.solidityProgramming.topics.syntaxBasicsDesc",
				Resources: []Resource{
					{Type: ResourceDoc, Title: "Solidity Docs", URL: "https://docs.soliditylang.org/"},
					{Type: ResourceArticle, Title: "Solidity by Example", URL: "https://solidity-by-example.org/"},
				},
			},
			{ID: "data-types", TitleKey: "modules.solidityProgramming.topics.dataTypes", DescriptionKey: "modules.solidityProgramming.topics.dataTypesDesc"},
			{ID: "functions", TitleKey: "modules.solidityProgramming.topics.functions", DescriptionKey: "modules.solidityProgramming.topics.functionsDesc"},
			{ID: "inheritance", TitleKey: "modules.solidityProgramming.topics.inheritance", DescriptionKey: "modules.solidityProgramming.topics.inheritanceDesc"},
			{ID: "interfaces", TitleKey: "modules.solidityProgramming.topics.interfaces", DescriptionKey: "modules.solidityProgramming.topics.interfacesDesc"},
			{ID: "events-errors", TitleKey: "modules.solidityProgramming.topics.eventsErrors", DescriptionKey: "modules.solidityProgramming.topics.eventsErrorsDesc"},
		},
	},
	{
		ID:             "contract-security",
		TitleKey:       "modules.contractSecurity.title",
		DescriptionKey: "modules.contractSecurity.description",
		Level:          LevelDevelopment,
		Hours:          25,
		Icon:           "shield",
		Color:          "red",
		Prerequisites:  []string{"solidity-programming"},
		Topics: []Topic{
			{
				ID:             "reentrancy",
				TitleKey:       "modules.contractSecurity.topics.reentrancy",
				DescriptionKey: "modules.contractSecurity.topics.reentrancyDesc",
				Resources: []Resource{
					{Type: ResourceArticle, Title: "Reentrancy Attacks", URL: "https://consensys.github.io/smart-contract-best-practices/attacks/reentrancy/"},
				},
			},
			{ID: "overflow", TitleKey: "modules.contractSecurity.topics.overflow", DescriptionKey: "modules.contractSecurity.topics.overflowDesc"},
			{ID: "access-control", TitleKey: "modules.contractSecurity.topics.accessControl", DescriptionKey: "modules.contractSecurity.topics.accessControlDesc"},
			{ID: "audit-tools", TitleKey: "modules.contractSecurity.topics.auditTools", DescriptionKey: "modules.contractSecurity.topics.auditToolsDesc"},
		},
	},
	{
		ID:             "dev-toolchain",
		TitleKey:       "modules.devToolchain.title",
		DescriptionKey: "modules.devToolchain.description",
		Level:          LevelDevelopment,
		Hours:          20,
		Icon:           "wrench",
		Color:          "orange",
		Prerequisites:  []string{"solidity-programming"},
		Topics: []Topic{
			{
				ID:             "hardhat",
				TitleKey:       "modules.devToolchain.topics.hardhat",
				DescriptionKey: "modules.devToolchain.topics.hardhatDesc",
				Resources: []Resource{
					{Type: ResourceDoc, Title: "Hardhat Docs", URL: "https://hardhat.org/docs"},
				},
			},
			{
				ID:             "foundry",
				TitleKey:       "modules.devToolchain.topics.foundry",
				DescriptionKey: "modules.devToolchain.topics.foundryDesc",
				Resources: []Resource{
					{Type: ResourceDoc, Title: "Foundry Book", URL: "https://book.getfoundry.sh/"},
				},
			},
			{ID: "remix", TitleKey: "modules.devToolchain.topics.remix", DescriptionKey: "modules.devToolchain.topics.remixDesc"},
			{ID: "testing", TitleKey: "modules.devToolchain.topics.testing", DescriptionKey: "modules.devToolchain.topics.testingDesc"},
		},
	},
	{
		ID:             "frontend-integration",
		TitleKey:       "modules.frontendIntegration.title",
		DescriptionKey: "modules.frontendIntegration.description",
		Level:          LevelDevelopment,
		Hours:          30,
		Icon:           "layout",
		Color:          "green",
		Prerequisites:  []string{"dev-toolchain"},
		Topics: []Topic{
			{
				ID:             "ethers-viem",
				TitleKey:       "modules.frontendIntegration.topics.ethersViem",
				DescriptionKey: "modules.frontendIntegration.topics.ethersViemDesc",
				Resources: []Resource{
					{Type: ResourceDoc, Title: "Viem Docs", URL: "https://viem.sh/"},
					{Type: ResourceDoc, Title: "Ethers Docs", URL: "https://docs.ethers.org/"},
				},
			},
			{ID: "wagmi", TitleKey: "modules.frontendIntegration.topics.wagmi", DescriptionKey: "modules.frontendIntegration.topics.wagmiDesc"},
			{ID: "rainbowkit", TitleKey: "modules.frontendIntegration.topics.rainbowkit", DescriptionKey: "modules.frontendIntegration.topics.rainbowkitDesc"},
			{ID: "wallet-connection", TitleKey: "modules.frontendIntegration.topics.walletConnection", DescriptionKey: "modules.frontendIntegration.topics.walletConnectionDesc"},
		},
	},

	// 进阶层
	{
		ID:             "defi-development",
		TitleKey:       "modules.defiDevelopment.title",
		DescriptionKey: "modules.defiDevelopment.description",
		Level:          LevelAdvanced,
		Hours:          40,
		Icon:           "trending",
		Color:          "blue",
		Prerequisites:  []string{"frontend-integration", "contract-security"},
		Topics: []Topic{
			{
				ID:             "amm",
				TitleKey:       "modules.defiDevelopment.topics.amm",
				DescriptionKey: "modules.defiDevelopment.topics.ammDesc",
				Resources: []Resource{
					{Type: ResourceDoc, Title: "Uniswap V2 Docs", URL: "https://docs.uniswap.org/contracts/v2/overview"},
				},
			},
			{ID: "lending-protocol", TitleKey: "modules.defiDevelopment.topics.lendingProtocol", DescriptionKey: "modules.defiDevelopment.topics.lendingProtocolDesc"},
			{ID: "oracle-integration", TitleKey: "modules.defiDevelopment.topics.oracleIntegration", DescriptionKey: "modules.defiDevelopment.topics.oracleIntegrationDesc"},
			{ID: "yield-strategies", TitleKey: "modules.defiDevelopment.topics.yieldStrategies", DescriptionKey: "modules.defiDevelopment.topics.yieldStrategiesDesc"},
		},
	},
	{
		ID:             "nft-development",
		TitleKey:       "modules.nftDevelopment.title",
		DescriptionKey: "modules.nftDevelopment.description",
		Level:          LevelAdvanced,
		Hours:          25,
		Icon:           "image",
		Color:          "pink",
		Prerequisites:  []string{"frontend-integration"},
		Topics: []Topic{
			{
				ID:             "erc721",
				TitleKey:       "modules.nftDevelopment.topics.erc721",
				DescriptionKey: "modules.nftDevelopment.topics.erc721Desc",
				Resources: []Resource{
					{Type: ResourceDoc, Title: "OpenZeppelin ERC721", URL: "https://docs.openzeppelin.com/contracts/erc721"},
				},
			},
			{ID: "erc1155", TitleKey: "modules.nftDevelopment.topics.erc1155", DescriptionKey: "modules.nftDevelopment.topics.erc1155Desc"},
			{ID: "metadata", TitleKey: "modules.nftDevelopment.topics.metadata", DescriptionKey: "modules.nftDevelopment.topics.metadataDesc"},
			{ID: "marketplace", TitleKey: "modules.nftDevelopment.topics.marketplace", DescriptionKey: "modules.nftDevelopment.topics.marketplaceDesc"},
		},
	},
	{
		ID:             "layer2-development",
		TitleKey:       "modules.layer2Development.title",
		DescriptionKey: "modules.layer2Development.description",
		Level:          LevelAdvanced,
		Hours:          20,
		Icon:           "layers",
		Color:          "cyan",
		Prerequisites:  []string{"frontend-integration"},
		Topics: []Topic{
			{ID: "optimism", TitleKey: "modules.layer2Development.topics.optimism", DescriptionKey: "modules.layer2Development.topics.optimismDesc"},
			{ID: "arbitrum", TitleKey: "modules.layer2Development.topics.arbitrum", DescriptionKey: "modules.layer2Development.topics.arbitrumDesc"},
			{ID: "zksync", TitleKey: "modules.layer2Development.topics.zksync", DescriptionKey: "modules.layer2Development.topics.zksyncDesc"},
		},
	},
	{
		ID:             "contract-upgrades",
		TitleKey:       "modules.contractUpgrades.title",
		DescriptionKey: "modules.contractUpgrades.description",
		Level:          LevelAdvanced,
		Hours:          15,
		Icon:           "refresh",
		Color:          "purple",
		Prerequisites:  []string{"contract-security"},
		Topics: []Topic{
			{ID: "proxy-patterns", TitleKey: "modules.contractUpgrades.topics.proxyPatterns", DescriptionKey: "modules.contractUpgrades.topics.proxyPatternsDesc"},
			{ID: "diamond-pattern", TitleKey: "modules.contractUpgrades.topics.diamondPattern", DescriptionKey: "modules.contractUpgrades.topics.diamondPatternDesc"},
			{ID: "upgrade-safety", TitleKey: "modules.contractUpgrades.topics.upgradeSafety", DescriptionKey: "modules.contractUpgrades.topics.upgradeSafetyDesc"},
		},
	},

	// 专家层
	{
		ID:             "mev-arbitrage",
		TitleKey:       "modules.mevArbitrage.title",
		DescriptionKey: "modules.mevArbitrage.description",
		Level:          LevelExpert,
		Hours:          20,
		Icon:           "zap",
		Color:          "yellow",
		Prerequisites:  []string{"defi-development"},
		Topics: []Topic{
			{ID: "flashbots", TitleKey: "modules.mevArbitrage.topics.flashbots", DescriptionKey: "modules.mevArbitrage.topics.flashbotsDesc"},
			{ID: "mev-protection", TitleKey: "modules.mevArbitrage.topics.mevProtection", DescriptionKey: "modules.mevArbitrage.topics.mevProtectionDesc"},
			{ID: "sandwich-attacks", TitleKey: "modules.mevArbitrage.topics.sandwichAttacks", DescriptionKey: "modules.mevArbitrage.topics.sandwichAttacksDesc"},
		},
	},
	{
		ID:             "crosschain-development",
		TitleKey:       "modules.crosschainDevelopment.title",
		DescriptionKey: "modules.crosschainDevelopment.description",
		Level:          LevelExpert,
		Hours:          25,
		Icon:           "link",
		Color:          "blue",
		Prerequisites:  []string{"layer2-development"},
		Topics: []Topic{
			{ID: "bridge-protocols", TitleKey: "modules.crosschainDevelopment.topics.bridgeProtocols", DescriptionKey: "modules.crosschainDevelopment.topics.bridgeProtocolsDesc"},
			{ID: "crosschain-messaging", TitleKey: "modules.crosschainDevelopment.topics.crosschainMessaging", DescriptionKey: "modules.crosschainDevelopment.topics.crosschainMessagingDesc"},
			{ID: "security-considerations", TitleKey: "modules.crosschainDevelopment.topics.securityConsiderations", DescriptionKey: "modules.crosschainDevelopment.topics.securityConsiderationsDesc"},
		},
	},
	{
		ID:             "zk-applications",
		TitleKey:       "modules.zkApplications.title",
		DescriptionKey: "modules.zkApplications.description",
		Level:          LevelExpert,
		Hours:          40,
		Icon:           "lock",
		Color:          "green",
		Prerequisites:  []string{"layer2-development"},
		Topics: []Topic{
			{
				ID:             "zk-basics",
				TitleKey:       "modules.zkApplications.topics.zkBasics",
				DescriptionKey: "modules.zkApplications.topics.zkBasicsDesc",
				Resources: []Resource{
					{Type: ResourceDoc, Title: "ZK Whiteboard Sessions", URL: "https://zkhack.dev/whiteboard/"},
				},
			},
			{ID: "circom", TitleKey: "modules.zkApplications.topics.circom", DescriptionKey: "modules.zkApplications.topics.circomDesc"},
			{ID: "zk-use-cases", TitleKey: "modules.zkApplications.topics.zkUseCases", DescriptionKey: "modules.zkApplications.topics.zkUseCasesDesc"},
			{ID: "zk-rollups", TitleKey: "modules.zkApplications.topics.zkRollups", DescriptionKey: "modules.zkApplications.topics.zkRollupsDesc"},
		},
	},
}
