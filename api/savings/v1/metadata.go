package savingsapi

// UserIDMetadataKey carries the caller's user id on every call.
const UserIDMetadataKey = "x-user-id"
