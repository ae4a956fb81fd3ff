package script

// Default returns the built-in demo script for the Rust + Foundry polling
// project. This is the content printed when no override file is supplied.
func Default() *Script {
	return &Script{
		Title: "RUST + FOUNDRY POLLING SYSTEM DEMO",
		Commands: []CommandEntry{
			{Command: "cargo check", Description: "Validate Rust code compilation"},
			{Command: "cargo build --release", Description: "Build optimized binary"},
			{Command: "cargo run -- --help", Description: "Show CLI help"},
			{Command: "cd Counter && forge build", Description: "Compile smart contracts"},
			{Command: "cd Counter && forge test", Description: "Run smart contract tests"},
			{Command: "cd Counter && anvil", Description: "Start local blockchain (background)"},
			{Command: "cd Counter && forge script script/DecentralizedPolls.s.sol", Description: "Deploy contracts"},
		},
		Features: []string{
			"Colored CLI output with progress indicators",
			"Data export in JSON, CSV, and Table formats",
			"Advanced poll analytics with visual bars",
			"Comprehensive error handling",
			"Time-based poll management",
			"User activity tracking",
			"Multi-format result visualization",
			"Professional CLI experience",
		},
		Examples: []string{
			`cargo run -- create -q "What's your favorite blockchain?" -o "Ethereum,Bitcoin,Solana" -d 7`,
			"cargo run -- list",
			"cargo run -- vote -p 0 -o 1",
			"cargo run -- view -p 0",
			"cargo run -- results -p 0",
			"cargo run -- analytics -p 0",
			"cargo run -- export -p 0 -f json -o poll_data.json",
			"cargo run -- export -p 0 -f csv",
			"cargo run -- my-polls",
			"cargo run -- my-votes",
		},
		Workflow: []string{
			"1. Start local blockchain: cd Counter && anvil",
			"2. Deploy contracts: cd Counter && forge script script/DecentralizedPolls.s.sol --rpc-url http://localhost:8545 --broadcast",
			"3. Set environment variables:",
			"   export CONTRACT_ADDRESS=<deployed_address>",
			"   export RPC_URL=http://localhost:8545",
			"4. Use the enhanced CLI with all new features!",
		},
		Phases: []string{
			"Web Frontend (React/Next.js)",
			"Multi-chain Support (Polygon, Arbitrum)",
			"Security Enhancements & Anti-spam",
			"Weighted & Stake-based Voting",
			"REST API for External Integrations",
			"Mobile App Support",
			"Advanced Data Visualizations",
			"Reputation & Governance System",
		},
		Closing: []string{
			"Your Rust + Foundry polling system is ready for development!",
			"Run any of the commands above to get started.",
		},
	}
}
