package command

const interruptNotice = "Interrupt received, stopping after the current deployment. Send the signal again to exit immediately."

const allDeploymentsSucceeded = "✅ All testnet deployments completed!"
const someDeploymentsFailed = "⚠️  Testnet deployments completed with %d failure(s), see the summary above."
