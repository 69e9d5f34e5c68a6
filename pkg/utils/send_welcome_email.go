package utils

import "fmt"

func SendWelcomeEmail(to, username string) error {
	subject := fmt.Sprintf("Welcome to Financify, %s!", username)

	body := fmt.Sprintf(`
	<!DOCTYPE html>
	<html lang="en">
	<head>
		<meta charset="UTF-8" />
		<title>Welcome to Financify</title>
		<style>
			body { font-family: Arial, sans-serif; background-color: #f6f8fa; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #ffffff; border-radius: 12px; overflow: hidden; border-top: 5px solid #1f6feb; }
			.header { background-color: #1f6feb; color: #ffffff; text-align: center; padding: 30px 20px; }
			.header h1 { margin: 0; font-size: 24px; }
			.content { padding: 30px 35px; color: #333333; }
			.greeting { font-size: 17px; font-weight: 600; margin-bottom: 12px; }
			.message { font-size: 15px; line-height: 1.8; color: #444444; margin-bottom: 14px; }
			ul { padding-left: 20px; }
			ul li { margin-bottom: 6px; font-size: 14px; color: #555555; }
			.footer { text-align: center; font-size: 12px; color: #999999; padding: 18px; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header"><h1>Welcome to Financify</h1></div>
			<div class="content">
				<p class="greeting">Hi %s,</p>
				<p class="message">Your account is ready. From your dashboard you can now:</p>
				<ul>
					<li>Track accounts, income and expenses in one place</li>
					<li>Watch your investments and loans</li>
					<li>Set budgets and follow your monthly progress</li>
				</ul>
				<p class="message">Happy tracking!</p>
			</div>
			<div class="footer">You received this email because an account was registered with this address.</div>
		</div>
	</body>
	</html>`, username)

	return SendEmail(to, subject, body)
}
