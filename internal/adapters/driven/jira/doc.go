// Package jira provides the Jira REST API v3 adapter for driven.IssueTracker.
//
// Requests are paced by a token bucket and back off when Jira reports an
// exhausted quota. Failed responses are decoded into *domain.RemoteError
// so services can inspect field-level rejections.
package jira
