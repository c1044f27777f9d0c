// Package seed holds the deterministic datasets the repositories reset to.
// All timestamps are anchored at a fixed base instant so every reset, on any
// machine, rebuilds a bit-identical baseline.
package seed

import (
	"fmt"
	"time"

	"github.com/spec-kit/support-desk/internal/domain"
)

// Base is the reference instant all seed timestamps are derived from.
var Base = time.Date(2025, time.January, 15, 10, 0, 0, 0, time.UTC)

// at returns Base shifted into the past by the given amounts.
func at(daysAgo, hoursAgo, minutesAgo int) time.Time {
	return Base.Add(-time.Duration(daysAgo*24*60+hoursAgo*60+minutesAgo) * time.Minute)
}

// Users returns the fixed demo accounts. The slice order is the order
// assignee pickers present usernames in.
func Users() []domain.User {
	return []domain.User{
		{Username: "admin", Password: "admin123", Role: domain.RoleAdmin},
		{Username: "agent", Password: "agent123", Role: domain.RoleAgent},
	}
}

// Customers returns the seed customer accounts, CUST-001 through CUST-012.
func Customers() []domain.Customer {
	return []domain.Customer{
		{ID: "CUST-001", Name: "Alice Morgan", Email: "alice.morgan@acmecorp.com", Company: "Acme Corp", SlaLevel: domain.SlaGold, IsActive: true},
		{ID: "CUST-002", Name: "Ben Okafor", Email: "ben.okafor@globex.io", Company: "Globex", SlaLevel: domain.SlaSilver, IsActive: true},
		{ID: "CUST-003", Name: "Carla Jimenez", Email: "carla@initech.net", Company: "Initech", SlaLevel: domain.SlaBronze, IsActive: true},
		{ID: "CUST-004", Name: "Daniel Toft", Email: "d.toft@umbrella-labs.com", Company: "Umbrella Labs", SlaLevel: domain.SlaGold, IsActive: false},
		{ID: "CUST-005", Name: "Elena Petrova", Email: "elena.petrova@soylent.org", Company: "Soylent", SlaLevel: domain.SlaSilver, IsActive: true},
		{ID: "CUST-006", Name: "Farid Haddad", Email: "farid@wonka-industries.com", Company: "Wonka Industries", SlaLevel: domain.SlaBronze, IsActive: false},
		{ID: "CUST-007", Name: "Grace Lin", Email: "grace.lin@starkfield.com", Company: "Starkfield", SlaLevel: domain.SlaGold, IsActive: true},
		{ID: "CUST-008", Name: "Hugo Brandt", Email: "hugo@tyrell-analytics.de", Company: "Tyrell Analytics", SlaLevel: domain.SlaSilver, IsActive: true},
		{ID: "CUST-009", Name: "Ingrid Sola", Email: "ingrid.sola@vehement.co", Company: "Vehement", SlaLevel: domain.SlaBronze, IsActive: true},
		{ID: "CUST-010", Name: "Jonas Keller", Email: "jonas@massive-dynamic.com", Company: "Massive Dynamic", SlaLevel: domain.SlaGold, IsActive: true},
		{ID: "CUST-011", Name: "Kala Reddy", Email: "kala.reddy@hooli.xyz", Company: "Hooli", SlaLevel: domain.SlaSilver, IsActive: false},
		{ID: "CUST-012", Name: "Liam Doyle", Email: "liam.doyle@pied-piper.com", Company: "Pied Piper", SlaLevel: domain.SlaBronze, IsActive: true},
	}
}

func ticketID(n int) string {
	return fmt.Sprintf("TKT-%03d", n)
}

func commentID(n int) string {
	return fmt.Sprintf("CMT-%03d", n)
}

// Tickets returns the seed tickets, TKT-001 through TKT-105. The first ten
// are curated; the remainder cycle through fixed tables so the dataset stays
// large enough to exercise paging without hand-maintaining every record.
func Tickets() []domain.Ticket {
	tickets := []domain.Ticket{
		{ID: "TKT-001", Title: "Application fails to load on Chrome 120+", Description: "Customers on recent Chrome builds see a blank page; console shows a JavaScript bundle loading error.", Status: domain.TicketStatusInProgress, Priority: domain.TicketPriorityCritical, CreatedAt: at(1, 2, 0), UpdatedAt: at(0, 12, 0), CustomerID: "CUST-001", AssignedToUsername: "admin", Tags: []string{"browser", "regression"}},
		{ID: "TKT-002", Title: "Notification emails not delivered", Description: "Outbound notification emails bounce back from the customer's domain.", Status: domain.TicketStatusResolved, Priority: domain.TicketPriorityHigh, CreatedAt: at(2, 0, 0), UpdatedAt: at(0, 4, 0), CustomerID: "CUST-002", AssignedToUsername: "agent", Tags: []string{"email"}},
		{ID: "TKT-003", Title: "Dashboard widgets time out", Description: "Dashboard API returns 504 errors under load; Gold SLA accounts are affected.", Status: domain.TicketStatusOpen, Priority: domain.TicketPriorityCritical, CreatedAt: at(0, 14, 0), UpdatedAt: at(0, 8, 0), CustomerID: "CUST-007", AssignedToUsername: "admin", Tags: []string{"performance", "api"}},
		{ID: "TKT-004", Title: "PDF export garbles special characters", Description: "Exported PDFs render accented characters as question marks.", Status: domain.TicketStatusResolved, Priority: domain.TicketPriorityMedium, CreatedAt: at(4, 0, 0), UpdatedAt: at(1, 12, 0), CustomerID: "CUST-003", AssignedToUsername: "agent", Tags: []string{"export", "pdf"}},
		{ID: "TKT-005", Title: "Mobile app crashes on launch", Description: "iOS 17 users report an immediate crash; logs point at the authentication module.", Status: domain.TicketStatusInProgress, Priority: domain.TicketPriorityCritical, CreatedAt: at(0, 5, 0), UpdatedAt: at(0, 1, 0), CustomerID: "CUST-005", AssignedToUsername: "admin", Tags: []string{"mobile", "crash"}},
		{ID: "TKT-006", Title: "Page loads slow for large accounts", Description: "Accounts with 50k+ records experience multi-second page loads.", Status: domain.TicketStatusOpen, Priority: domain.TicketPriorityHigh, CreatedAt: at(3, 0, 0), UpdatedAt: at(0, 18, 0), CustomerID: "CUST-010", AssignedToUsername: "agent", Tags: []string{"performance"}},
		{ID: "TKT-007", Title: "Stale permissions after role change", Description: "Users keep their old permissions until they clear the browser cache.", Status: domain.TicketStatusClosed, Priority: domain.TicketPriorityMedium, CreatedAt: at(7, 0, 0), UpdatedAt: at(3, 0, 0), CustomerID: "CUST-004", AssignedToUsername: "admin", Tags: []string{"auth", "cache"}},
		{ID: "TKT-008", Title: "API rate limit lower than documented", Description: "Documented limit is 100 req/min but requests throttle at 50.", Status: domain.TicketStatusResolved, Priority: domain.TicketPriorityLow, CreatedAt: at(2, 6, 0), UpdatedAt: at(1, 0, 0), CustomerID: "CUST-008", AssignedToUsername: "agent", Tags: []string{"api", "docs"}},
		{ID: "TKT-009", Title: "Search returns irrelevant results", Description: "Full-text search ranks unrelated records above exact matches.", Status: domain.TicketStatusResolved, Priority: domain.TicketPriorityMedium, CreatedAt: at(3, 8, 0), UpdatedAt: at(1, 0, 0), CustomerID: "CUST-009", AssignedToUsername: "agent", Tags: []string{"search"}},
		{ID: "TKT-010", Title: "File uploads rejected above 5MB", Description: "Attachments over 5MB fail even though the plan allows 25MB.", Status: domain.TicketStatusClosed, Priority: domain.TicketPriorityHigh, CreatedAt: at(6, 0, 0), UpdatedAt: at(2, 0, 0), CustomerID: "CUST-006", AssignedToUsername: "agent", Tags: []string{"uploads"}},
	}

	subjects := []string{
		"Email digest arrives late",
		"Calendar sync drops events",
		"Dark mode contrast too low",
		"Invoice totals off by rounding",
		"SMS alerts not sent",
		"CSV export truncates fields",
		"Webhook deliveries retried forever",
		"Session expires mid-form",
		"Report charts render blank",
		"Audit log misses bulk actions",
		"Two-factor prompt loops",
		"Timezone shown in UTC only",
		"Saved filters disappear",
		"Keyboard shortcuts conflict",
		"Avatar images fail to load",
		"Password reset link expired early",
		"Custom fields lose validation",
		"Locale currency misformatted",
		"Bulk import stalls at 90%",
	}
	statuses := []domain.TicketStatus{
		domain.TicketStatusOpen,
		domain.TicketStatusInProgress,
		domain.TicketStatusResolved,
		domain.TicketStatusClosed,
	}
	priorities := []domain.TicketPriority{
		domain.TicketPriorityLow,
		domain.TicketPriorityMedium,
		domain.TicketPriorityHigh,
		domain.TicketPriorityCritical,
	}
	assignees := []string{"admin", "agent"}
	tagTable := [][]string{
		{"email"}, {"sync"}, {"ui", "accessibility"}, {"billing"},
		{"notifications"}, {"export"}, {"webhooks"}, {"auth"},
		{"reports"}, {"audit"}, nil,
	}

	customers := Customers()
	for n := 11; n <= 105; n++ {
		i := n - 11
		subject := subjects[i%len(subjects)]
		owner := customers[i%len(customers)]
		created := at(2+i%44, (i*5)%24, 0)
		updated := created.Add(time.Duration(1+(i*7)%70) * time.Hour)
		if updated.After(Base) {
			updated = Base
		}
		tickets = append(tickets, domain.Ticket{
			ID:                 ticketID(n),
			Title:              fmt.Sprintf("%s (%s)", subject, owner.Company),
			Description:        fmt.Sprintf("Reported by %s: %s.", owner.Name, subject),
			Status:             statuses[i%len(statuses)],
			Priority:           priorities[(i/3)%len(priorities)],
			CreatedAt:          created,
			UpdatedAt:          updated,
			CustomerID:         owner.ID,
			AssignedToUsername: assignees[i%2],
			Tags:               append([]string(nil), tagTable[i%len(tagTable)]...),
		})
	}
	return tickets
}

// Comments returns the seed comments, CMT-001 through CMT-205, chronological
// within each curated thread.
func Comments() []domain.Comment {
	comments := []domain.Comment{
		{ID: "CMT-001", TicketID: "TKT-001", AuthorUsername: "admin", Message: "Investigating this issue. Initial analysis suggests a JavaScript bundle loading error.", CreatedAt: at(0, 20, 0)},
		{ID: "CMT-002", TicketID: "TKT-001", AuthorUsername: "agent", Message: "Customer confirmed the issue is affecting Chrome version 120 and above.", CreatedAt: at(0, 18, 0)},
		{ID: "CMT-003", TicketID: "TKT-001", AuthorUsername: "admin", Message: "Found the root cause - a polyfill incompatibility with newer Chrome versions. Working on a fix.", CreatedAt: at(0, 15, 0)},
		{ID: "CMT-004", TicketID: "TKT-002", AuthorUsername: "agent", Message: "Checked the email logs. Emails are being sent but bouncing back from the customer domain.", CreatedAt: at(1, 8, 0)},
		{ID: "CMT-005", TicketID: "TKT-002", AuthorUsername: "admin", Message: "SPF records look correct. Reaching out to customer IT department to check their spam filters.", CreatedAt: at(1, 4, 0)},
		{ID: "CMT-006", TicketID: "TKT-002", AuthorUsername: "agent", Message: "Customer confirmed they found our emails in their quarantine folder. Whitelisting our domain now.", CreatedAt: at(0, 8, 0)},
		{ID: "CMT-007", TicketID: "TKT-003", AuthorUsername: "admin", Message: "Dashboard API is returning 504 timeout errors. Escalating to the backend team.", CreatedAt: at(0, 12, 0)},
		{ID: "CMT-008", TicketID: "TKT-003", AuthorUsername: "agent", Message: "Similar reports coming in from other Gold SLA customers. This seems widespread.", CreatedAt: at(0, 10, 0)},
		{ID: "CMT-009", TicketID: "TKT-004", AuthorUsername: "agent", Message: "Reproduced the issue. The PDF library is throwing an encoding error for special characters.", CreatedAt: at(3, 0, 0)},
		{ID: "CMT-010", TicketID: "TKT-004", AuthorUsername: "admin", Message: "Fixed by updating the PDF library. Deployed to staging for testing.", CreatedAt: at(2, 0, 0)},
		{ID: "CMT-011", TicketID: "TKT-004", AuthorUsername: "agent", Message: "Verified the fix in staging. Ready for production deployment.", CreatedAt: at(1, 12, 0)},
		{ID: "CMT-012", TicketID: "TKT-005", AuthorUsername: "admin", Message: "Crash report indicates a null pointer in the authentication module.", CreatedAt: at(0, 3, 0)},
		{ID: "CMT-013", TicketID: "TKT-005", AuthorUsername: "agent", Message: "Customer has sent us their device logs. Analyzing now.", CreatedAt: at(0, 2, 0)},
		{ID: "CMT-014", TicketID: "TKT-005", AuthorUsername: "admin", Message: "Identified the issue - biometric auth callback is null on iOS 17. Emergency patch in progress.", CreatedAt: at(0, 1, 0)},
		{ID: "CMT-015", TicketID: "TKT-006", AuthorUsername: "agent", Message: "Running performance analysis on the customer's account. 50k+ records might be causing slowdowns.", CreatedAt: at(2, 0, 0)},
		{ID: "CMT-016", TicketID: "TKT-006", AuthorUsername: "admin", Message: "Recommend implementing pagination on their data-heavy pages. Creating optimization tickets.", CreatedAt: at(1, 0, 0)},
		{ID: "CMT-017", TicketID: "TKT-007", AuthorUsername: "admin", Message: "Implemented forced cache refresh on role changes. Testing the fix now.", CreatedAt: at(5, 0, 0)},
		{ID: "CMT-018", TicketID: "TKT-007", AuthorUsername: "agent", Message: "Customer confirmed the fix works. Closing this ticket.", CreatedAt: at(3, 0, 0)},
		{ID: "CMT-019", TicketID: "TKT-008", AuthorUsername: "agent", Message: "Verified the rate limiting config. The limit was incorrectly set to 50 instead of 100. Updating now.", CreatedAt: at(1, 0, 0)},
		{ID: "CMT-020", TicketID: "TKT-009", AuthorUsername: "admin", Message: "Full-text search index appears corrupted. Rebuilding the index.", CreatedAt: at(2, 0, 0)},
		{ID: "CMT-021", TicketID: "TKT-009", AuthorUsername: "agent", Message: "Index rebuild completed. Search results looking correct now. Monitoring for further issues.", CreatedAt: at(1, 0, 0)},
		{ID: "CMT-022", TicketID: "TKT-010", AuthorUsername: "agent", Message: "The 5MB limit was a backend configuration issue. Updated to 25MB as per documentation.", CreatedAt: at(4, 0, 0)},
		{ID: "CMT-023", TicketID: "TKT-010", AuthorUsername: "admin", Message: "Also added a proper error message when file size exceeds the limit.", CreatedAt: at(3, 0, 0)},
		{ID: "CMT-024", TicketID: "TKT-010", AuthorUsername: "agent", Message: "Customer verified and is happy with the fix. Marking as resolved.", CreatedAt: at(2, 0, 0)},
	}

	updates := []string{
		"Reproduced locally. Narrowing down the responsible change.",
		"Customer provided additional logs. Reviewing now.",
		"Fix drafted and under review.",
		"Deployed to staging for verification.",
		"Verified in staging. Scheduling production rollout.",
		"Rolled out to production. Monitoring error rates.",
		"Customer confirmed the behavior is resolved.",
		"Waiting on customer response before proceeding.",
		"Escalated to the platform team for a deeper look.",
		"Added regression coverage so this does not resurface.",
		"Follow-up scheduled with the customer success team.",
	}
	authors := []string{"admin", "agent"}

	for n := 25; n <= 205; n++ {
		i := n - 25
		ticketNum := 11 + i%95
		comments = append(comments, domain.Comment{
			ID:             commentID(n),
			TicketID:       ticketID(ticketNum),
			AuthorUsername: authors[(i/95+i)%2],
			Message:        updates[i%len(updates)],
			CreatedAt:      at(i%9, (i*3)%24, (i*11)%60),
		})
	}
	return comments
}
