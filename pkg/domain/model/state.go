package model

// ProvisionState tracks how far seed provisioning progressed. A failure leaves the state at the
// last step reached so that the caller can see which remote side effects exist.
type ProvisionState string

const (
	ProvisionRequested        ProvisionState = "requested"
	ProvisionSourceVerified   ProvisionState = "source_verified"
	ProvisionSeedCreated      ProvisionState = "seed_created"
	ProvisionContentMirrored  ProvisionState = "content_mirrored"
	ProvisionTemplatePromoted ProvisionState = "template_promoted"
	ProvisionReady            ProvisionState = "ready"
)

var provisionOrder = map[ProvisionState]int{
	ProvisionRequested:        0,
	ProvisionSourceVerified:   1,
	ProvisionSeedCreated:      2,
	ProvisionContentMirrored:  3,
	ProvisionTemplatePromoted: 4,
	ProvisionReady:            5,
}

func (x ProvisionState) String() string { return string(x) }

// Before reports whether x is an earlier step than y.
func (x ProvisionState) Before(y ProvisionState) bool {
	return provisionOrder[x] < provisionOrder[y]
}

// HasRemoteSideEffect is true once a repository has been created in the organization.
func (x ProvisionState) HasRemoteSideEffect() bool {
	return !x.Before(ProvisionSeedCreated)
}
