// Package notifier posts pick announcements.
//
// Notifiers receive the top picks from a saved result and publish one post per
// pick. TwitterNotifier posts through the Twitter v1.1 API with OAuth1 user
// credentials; DryRunNotifier prints the posts instead.
package notifier
