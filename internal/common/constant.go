package common

// DefaultPasswordHashCost is the bcrypt work factor used when none is configured.
const DefaultPasswordHashCost = 10

// ModuleKey is the structured-log attribute naming the emitting component.
const ModuleKey = "module"
