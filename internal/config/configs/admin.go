package configs

// Admin configures access-control bootstrap. The deployer address is
// installed as the initial admin on first startup; it never overwrites
// an admin already on record.
type Admin struct {
	// DeployerAddress becomes the admin when no admin role exists yet.
	DeployerAddress string `env:"DEPLOYER_ADDRESS" envDefault:"0x00000000000000000000000000000000000000a1"`
}
