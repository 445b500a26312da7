package email

import (
	"fmt"
)

const appName = "RayDent"

// BuildPasswordResetEmail creates a password reset code message.
func BuildPasswordResetEmail(email, name, code string, expiryMinutes int) Message {
	greeting := name
	if greeting == "" {
		greeting = "there"
	}

	subject := fmt.Sprintf("Your %s password reset code", appName)

	textBody := fmt.Sprintf(`Hi %s,

You requested a password reset for your %s account.

Reset code: %s

This code is valid for %d minutes. If you didn't request this, please ignore this email.

The %s Team`,
		greeting, appName, code, expiryMinutes, appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">Hi %s,</h2>
    <p>You requested a password reset for your %s account.</p>
    <p style="text-align: center; margin: 30px 0; background-color: #f3f4f6; padding: 20px; border-radius: 6px;">
        <span style="font-size: 12px; color: #6b7280;">Reset code:</span><br>
        <span style="font-size: 36px; font-weight: bold; font-family: monospace; color: #000; letter-spacing: 4px;">%s</span>
    </p>
    <p style="color: #ef4444; font-size: 14px; text-align: center;">This code is valid for %d minutes.</p>
    <p>If you didn't request this, please ignore this email.</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">The %s Team</p>
</body>
</html>`,
		greeting, appName, code, expiryMinutes, appName)

	return Message{
		To:       []string{email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// BuildRadiologistWelcomeEmail notifies a newly provisioned radiologist of
// their temporary credentials.
func BuildRadiologistWelcomeEmail(email, name, tempPassword string) Message {
	greeting := name
	if greeting == "" {
		greeting = "there"
	}

	subject := fmt.Sprintf("Your %s radiologist account", appName)

	textBody := fmt.Sprintf(`Hi %s,

An administrator created a radiologist account for you on %s.

Login: %s
Temporary password: %s

Please sign in and change your password as soon as possible.

The %s Team`,
		greeting, appName, email, tempPassword, appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">Hi %s,</h2>
    <p>An administrator created a radiologist account for you on %s.</p>
    <p>Login: <strong>%s</strong></p>
    <p style="background-color: #f3f4f6; padding: 10px 15px; border-radius: 4px; font-family: monospace; font-size: 16px;">%s</p>
    <p>Please sign in and change your password as soon as possible.</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">The %s Team</p>
</body>
</html>`,
		greeting, appName, email, tempPassword, appName)

	return Message{
		To:       []string{email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// BuildExamFinalizedEmail notifies the clinic that a report is ready.
func BuildExamFinalizedEmail(to []string, patientName, examType string) Message {
	subject := fmt.Sprintf("Report ready: %s", patientName)

	textBody := fmt.Sprintf(`Hello,

The report for the exam below is ready on %s.

Patient: %s
Exam type: %s

Sign in to the portal to download the report.

The %s Team`,
		appName, patientName, examType, appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #16a34a;">Report ready</h2>
    <p>The report for the exam below is ready on %s.</p>
    <p>Patient: <strong>%s</strong><br>Exam type: <strong>%s</strong></p>
    <p>Sign in to the portal to download the report.</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">The %s Team</p>
</body>
</html>`,
		appName, patientName, examType, appName)

	return Message{
		To:       to,
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// BuildUrgentExamEmail alerts compatible radiologists about a new urgent
// submission.
func BuildUrgentExamEmail(to []string, patientName, examType, software string, due string) Message {
	subject := fmt.Sprintf("Urgent exam waiting: %s", examType)

	textBody := fmt.Sprintf(`Hello,

An urgent exam was just submitted on %s and is waiting to be claimed.

Patient: %s
Exam type: %s
Software: %s
Due: %s

The %s Team`,
		appName, patientName, examType, software, due, appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #ef4444;">Urgent exam waiting</h2>
    <p>An urgent exam was just submitted on %s and is waiting to be claimed.</p>
    <p>Patient: <strong>%s</strong><br>Exam type: <strong>%s</strong><br>Software: <strong>%s</strong><br>Due: <strong>%s</strong></p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">The %s Team</p>
</body>
</html>`,
		appName, patientName, examType, software, due, appName)

	return Message{
		To:       to,
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}
